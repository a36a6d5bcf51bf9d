package api

import (
	"fmt"
	"net/http"

	"github.com/gugan-zemuria/notes-app/internal/common"
)

// APIError carries the backend's error payload for a non-2xx response.
// The message is the server's own wording, surfaced verbatim to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// classify with errors.Is without depending on this package's type.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return nil
	}
}
