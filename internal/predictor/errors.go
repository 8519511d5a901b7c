package predictor

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds for prediction calls. Every error returned by Client wraps
// exactly one of these.
var (
	ErrNetwork   = errors.New("prediction service unreachable")
	ErrTimeout   = errors.New("prediction service timed out")
	ErrService   = errors.New("prediction service returned an error")
	ErrMalformed = errors.New("prediction service returned a malformed response")
)

// ServiceError carries the status and error message of a non-2xx response.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrService, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrService, e.StatusCode, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return ErrService
}

// MapHTTPStatus maps prediction failures to HTTP status codes for API responses.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrTimeout) {
		return http.StatusGatewayTimeout
	}
	if errors.Is(err, ErrNetwork) || errors.Is(err, ErrService) || errors.Is(err, ErrMalformed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
