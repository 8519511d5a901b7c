package identify

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/internal/upload"
)

// ErrStale reports that a newer analysis superseded this one.
var ErrStale = errors.New("analysis superseded by a newer request")

// ValidationError reports a request that failed its preconditions. No
// prediction call is made for it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// MapHTTPStatus maps identification errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrStale) {
		return http.StatusConflict
	}
	if errors.Is(err, upload.ErrNoFile) || errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrInvalidDataURI) {
		return upload.MapHTTPStatus(err)
	}
	return predictor.MapHTTPStatus(err)
}
