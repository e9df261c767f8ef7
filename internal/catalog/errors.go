package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey means no credential was configured. It is returned
	// before any request is attempted.
	ErrMissingAPIKey = errors.New("API key is missing")

	// ErrUnavailable wraps transport failures: refused connections, DNS
	// errors, malformed base URLs.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrInvalidResponse indicates a 2xx body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid catalog response")
)

// HTTPError is a non-2xx response from the catalog. Message is the
// server-supplied "message" field, or the status text when the body
// carried none.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d, Message: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the catalog.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

func errorCode(err error) string {
	var httpErr *HTTPError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrMissingAPIKey):
		return "MISSING_KEY"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("HTTP_%d", httpErr.StatusCode)
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
