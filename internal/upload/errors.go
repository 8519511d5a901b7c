package upload

import (
	"errors"
	"net/http"
)

// Upload errors.
var (
	ErrNoFile         = errors.New("no image selected")
	ErrTooLarge       = errors.New("image exceeds maximum upload size")
	ErrInvalidDataURI = errors.New("invalid image data uri")
)

// MapHTTPStatus maps upload errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrNoFile) || errors.Is(err, ErrInvalidDataURI) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
