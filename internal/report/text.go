package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/upload"
)

type textWriter struct {
	out io.Writer
}

func (w *textWriter) WriteIdentification(id *identify.Identification, img *upload.Image) error {
	var b strings.Builder

	fmt.Fprintln(&b, titleStyle.Render(id.Name()))
	fmt.Fprintln(&b, subtleStyle.Render(id.ScientificName()))
	fmt.Fprintln(&b)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Confidence\t%s%%\n", id.ConfidenceText())
	fmt.Fprintf(tw, "Class\t%d\n", id.Prediction.ClassID)
	fmt.Fprintf(tw, "Role\t%s\n", id.Role.Label())
	if img != nil {
		fmt.Fprintf(tw, "Image\t%s (%s, %d bytes)\n", img.Filename, img.ContentType, img.Size)
		if d := img.Dimensions(); d != "" {
			fmt.Fprintf(tw, "Dimensions\t%s\n", d)
		}
		if m := img.Metadata; m != nil && m.Camera() != "" {
			fmt.Fprintf(tw, "Camera\t%s\n", m.Camera())
		}
	}
	tw.Flush()

	if note := id.FallbackNote(); note != "" {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, warningStyle.Render(note))
	}

	if g := id.Growing; g != nil {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, headerStyle.Render("Growing Parameters"))
		tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Phase\tTemperature\tHumidity\tCO2\tLight\tDuration")
		for _, p := range g.Phases {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.Name, p.Temperature, p.Humidity, p.CO2, p.Light, p.Duration)
		}
		tw.Flush()
		fmt.Fprintf(&b, "Substrate: %s\n", g.Substrate)
	}

	if n := id.Nutrition; n != nil {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, headerStyle.Render("Nutrition"))
		writeList(&b, "Vitamins", n.Vitamins)
		writeList(&b, "Minerals", n.Minerals)
		writeList(&b, "Health Benefits", n.Benefits)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, id.Summary())

	_, err := io.WriteString(w.out, b.String())
	return err
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func (w *textWriter) WriteCatalog(species []knowledge.Species) error {
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("CLASS"),
		headerStyle.Render("COMMON NAME"),
		headerStyle.Render("SCIENTIFIC NAME"))
	for _, s := range species {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", strconv.Itoa(s.ClassID), s.Common, s.Scientific)
	}

	return tw.Flush()
}
