// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	tododomain "github.com/ghuser/todolists/services/todo/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// The body carries only the status text; err itself is never sent to the client.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := Status(err)
	httpx.JSONError(w, status, http.StatusText(status))
}

// Status returns the HTTP status code err maps to.
func Status(err error) int {
	switch {
	case tododomain.IsValidation(err):
		return http.StatusBadRequest // 400
	case errors.Is(err, tododomain.ErrListNotFound), errors.Is(err, tododomain.ErrItemNotFound):
		// Missing ids are reported as server errors, matching the existing clients.
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
