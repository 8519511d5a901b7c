// Package report renders identifications and the species catalog for the
// command line in text, Markdown, or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/upload"
)

// Format selects a Writer implementation.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat accepts text, markdown (or md), and json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q: want text, markdown, or json", s)
}

// Writer outputs reports to a fixed destination.
type Writer interface {
	// WriteIdentification renders one identification and the image it came from.
	WriteIdentification(id *identify.Identification, img *upload.Image) error
	// WriteCatalog renders the species listing.
	WriteCatalog(species []knowledge.Species) error
}

// New returns the Writer for format.
func New(format Format, out io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return &textWriter{out: out}, nil
	case FormatMarkdown:
		return &markdownWriter{out: out}, nil
	case FormatJSON:
		return &jsonWriter{out: out}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
