// Package upload turns a selected image file into an in-memory payload that
// can be previewed in a page and sent to the prediction service.
//
// Nothing is written to disk. The file is never rejected for its format:
// dimensions and EXIF metadata are best-effort and absent when the bytes
// cannot be decoded.
package upload

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime"
	"net/http"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded upload ready for preview and classification. Only the
// data URI form of the bytes is retained.
type Image struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	Format      string    `json:"format,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty"`
	DataURI     string    `json:"-"`
}

// Decode builds an Image from raw bytes. The declared content type wins unless
// it is empty or application/octet-stream, in which case the type is sniffed.
func Decode(filename, contentType string, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	img := &Image{
		Filename:    filename,
		ContentType: detectContentType(contentType, data),
		Size:        int64(len(data)),
	}
	img.DataURI = EncodeDataURI(img.ContentType, data)

	if cfg, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width = cfg.Width
		img.Height = cfg.Height
		img.Format = format
	}

	img.Metadata = ExtractMetadata(data)

	return img, nil
}

// Read consumes r up to maxSize bytes and decodes the result.
// Returns ErrTooLarge when r holds more than maxSize bytes.
func Read(r io.Reader, filename, contentType string, maxSize int64) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, ErrTooLarge
	}
	return Decode(filename, contentType, data)
}

// Dimensions returns "WxH" or an empty string when unknown.
func (i *Image) Dimensions() string {
	if i.Width == 0 || i.Height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}

// detectContentType normalizes the declared media type, dropping parameters.
// Unparseable, empty, or generic declarations are sniffed from the bytes.
func detectContentType(header string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil || mediaType == "application/octet-stream" {
		mediaType, _, _ = mime.ParseMediaType(http.DetectContentType(data))
	}
	return mediaType
}
