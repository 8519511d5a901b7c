package upload

import (
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// Metadata is the camera information found in an image's EXIF block.
type Metadata struct {
	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Software string `json:"software,omitempty"`
	Captured string `json:"captured,omitempty"`
	HasGPS   bool   `json:"has_gps"`
}

// Camera returns make and model joined, without repeating a make the model
// already starts with.
func (m *Metadata) Camera() string {
	if m.Make == "" || strings.HasPrefix(m.Model, m.Make) {
		return m.Model
	}
	if m.Model == "" {
		return m.Make
	}
	return m.Make + " " + m.Model
}

// ExtractMetadata reads EXIF tags from data. It returns nil when the image
// carries no EXIF block or none of the recognized tags.
func ExtractMetadata(data []byte) *Metadata {
	raw, err := exif.SearchAndExtractExif(data)
	if err != nil || raw == nil {
		return nil
	}

	entries, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return nil
	}

	var m Metadata
	var found bool
	for _, entry := range entries {
		value := strings.TrimSpace(strings.TrimRight(entry.Formatted, "\x00"))

		switch {
		case entry.TagName == "Make":
			m.Make, found = value, true
		case entry.TagName == "Model":
			m.Model, found = value, true
		case entry.TagName == "Software":
			m.Software, found = value, true
		case entry.TagName == "DateTimeOriginal":
			m.Captured, found = value, true
		case entry.TagName == "DateTime" && m.Captured == "":
			m.Captured, found = value, true
		case strings.HasPrefix(entry.TagName, "GPS"):
			m.HasGPS, found = true, true
		}
	}

	if !found {
		return nil
	}
	return &m
}
