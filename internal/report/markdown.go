package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/internal/upload"
)

type markdownWriter struct {
	out io.Writer
}

func (w *markdownWriter) WriteIdentification(id *identify.Identification, img *upload.Image) error {
	md := markdown.NewMarkdown(w.out)

	md.H1(id.Name())
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Scientific name", "*" + id.ScientificName() + "*"},
			{"Confidence", id.ConfidenceText() + "%"},
			{"Class", strconv.Itoa(id.Prediction.ClassID)},
			{"Role", id.Role.Label()},
		},
	})
	md.PlainText("")

	if note := id.FallbackNote(); note != "" {
		md.Warning(note)
		md.PlainText("")
	}

	if img != nil {
		writeImage(md, img)
	}

	if id.Growing != nil {
		writeGrowing(md, id.Growing)
	}
	if id.Nutrition != nil {
		writeNutrition(md, id.Nutrition)
	}

	if f := id.Prediction.Features; f != nil {
		writeFeatures(md, f)
	}

	md.Note(id.Summary())

	return md.Build()
}

func writeImage(md *markdown.Markdown, img *upload.Image) {
	md.H2("Image")
	md.PlainText("")

	rows := [][]string{
		{"File", "`" + img.Filename + "`"},
		{"Type", img.ContentType},
		{"Size", strconv.FormatInt(img.Size, 10) + " bytes"},
	}
	if d := img.Dimensions(); d != "" {
		rows = append(rows, []string{"Dimensions", d})
	}
	if m := img.Metadata; m != nil {
		if c := m.Camera(); c != "" {
			rows = append(rows, []string{"Camera", c})
		}
		if m.Captured != "" {
			rows = append(rows, []string{"Captured", m.Captured})
		}
		if m.HasGPS {
			rows = append(rows, []string{"Location", "GPS tags present"})
		}
	}

	md.Table(markdown.TableSet{Header: []string{"Property", "Value"}, Rows: rows})
	md.PlainText("")
}

func writeGrowing(md *markdown.Markdown, g *knowledge.GrowingParameters) {
	md.H2("Growing Parameters")
	md.PlainText("")

	rows := make([][]string, 0, len(g.Phases))
	for _, p := range g.Phases {
		rows = append(rows, []string{p.Name, p.Temperature, p.Humidity, p.CO2, p.Light, p.Duration})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Phase", "Temperature", "Humidity", "CO2", "Light", "Duration"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainText("**Substrate:** " + g.Substrate)
	md.PlainText("")
}

func writeNutrition(md *markdown.Markdown, n *knowledge.NutritionalProfile) {
	md.H2("Nutrition")
	md.PlainText("")

	md.H3("Vitamins")
	md.BulletList(n.Vitamins...)
	md.PlainText("")

	md.H3("Minerals")
	md.BulletList(n.Minerals...)
	md.PlainText("")

	md.H3("Health Benefits")
	md.BulletList(n.Benefits...)
	md.PlainText("")
}

func writeFeatures(md *markdown.Markdown, f *predictor.Features) {
	md.H2("Image Features")
	md.PlainText("")

	rows := make([][]string, 0, 11)
	rows = append(rows, []string{"Color mean (RGB)", formatRGB(f.ColorMean)})
	for _, tf := range textureRows(f.TextureFeatures) {
		rows = append(rows, []string{tf.name, formatFloat(tf.value)})
	}

	md.Table(markdown.TableSet{Header: []string{"Feature", "Value"}, Rows: rows})
	md.PlainText("")
}

func (w *markdownWriter) WriteCatalog(species []knowledge.Species) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("Species")
	md.PlainText("")

	rows := make([][]string, 0, len(species))
	for _, s := range species {
		rows = append(rows, []string{strconv.Itoa(s.ClassID), s.Common, "*" + s.Scientific + "*"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Class", "Common name", "Scientific name"},
		Rows:   rows,
	})
	md.PlainText("")
	md.Note("Unrecognized classes resolve to class " + strconv.Itoa(knowledge.FallbackClassID) + ".")

	return md.Build()
}

type textureRow struct {
	name  string
	value float64
}

// textureRows lists the texture statistics, omitting the extended ones the
// service did not send.
func textureRows(t predictor.TextureFeatures) []textureRow {
	rows := []textureRow{
		{"Contrast", t.Contrast},
		{"Correlation", t.Correlation},
		{"Energy", t.Energy},
		{"Homogeneity", t.Homogeneity},
		{"Entropy", t.Entropy},
	}
	for _, r := range []textureRow{
		{"RMS", t.RMS},
		{"Smoothness", t.Smoothness},
		{"Skewness", t.Skewness},
		{"Variance", t.Variance},
		{"Kurtosis", t.Kurtosis},
	} {
		if r.value != 0 {
			rows = append(rows, r)
		}
	}
	return rows
}

func formatRGB(c [3]float64) string {
	return formatFloat(c[0]) + ", " + formatFloat(c[1]) + ", " + formatFloat(c[2])
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
