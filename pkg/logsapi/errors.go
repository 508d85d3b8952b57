package logsapi

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrEmptyID = errors.New("log id is required")

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("logs API %s %s error %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("logs API %s %s error %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
