package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable covers transport failures: the request never produced
	// an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches any APIError with status 401 via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches any APIError with status 404 via errors.Is.
	ErrNotFound = errors.New("not found")
)

// APIError is the uniform error for non-2xx backend responses. Message is
// the server-provided detail when the body carried one, or a fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Is maps well-known statuses to sentinel errors so callers can use
// errors.Is without inspecting the status themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
