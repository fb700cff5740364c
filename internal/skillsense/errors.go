package skillsense

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks a 401 response. By the time a caller sees it the
// session teardown hook has already run.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx backend response carrying the error envelope detail.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("bad status: %d", e.StatusCode)
}

// ErrorDetail returns the backend detail for display, or the fallback when
// the error carries none.
func ErrorDetail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
