package upload

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURI returns data:<mime>;base64,<payload>.
func EncodeDataURI(contentType string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(contentType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(contentType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// ParseDataURI splits a base64 data URI into its media type and bytes.
// A missing media type defaults to application/octet-stream.
func ParseDataURI(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload", ErrInvalidDataURI)
	}

	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURI)
	}
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some encoders emit the URL-safe alphabet
		data, err = base64.URLEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
		}
	}

	return mediaType, data, nil
}

// FromDataURI decodes a data URI into an Image.
func FromDataURI(filename, s string) (*Image, error) {
	mediaType, data, err := ParseDataURI(s)
	if err != nil {
		return nil, err
	}
	return Decode(filename, mediaType, data)
}
