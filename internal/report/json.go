package report

import (
	"encoding/json"
	"io"

	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/upload"
)

type jsonWriter struct {
	out io.Writer
}

type identificationDocument struct {
	Image          *upload.Image            `json:"image,omitempty"`
	Identification *identify.Identification `json:"identification"`
	Summary        string                   `json:"summary"`
}

func (w *jsonWriter) WriteIdentification(id *identify.Identification, img *upload.Image) error {
	return w.encode(identificationDocument{
		Image:          img,
		Identification: id,
		Summary:        id.Summary(),
	})
}

func (w *jsonWriter) WriteCatalog(species []knowledge.Species) error {
	return w.encode(species)
}

func (w *jsonWriter) encode(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
