// Package handlers holds one HTTP handler per todo endpoint. Handlers decode
// and validate the request, call the application services and serialize the
// result; status mapping lives in pkg/errhttp.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/todolists/pkg/errhttp"
	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	"github.com/ghuser/todolists/services/todo/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Bad Request"`
} // @name ErrorResponse

// SuccessResponse is returned by state flips and deletes.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
} // @name SuccessResponse

// pathID parses the {id} URL parameter as a positive int64. On failure it
// writes a 400 response and returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return 0, false
	}
	return id, true
}

func toItemResponse(it *models.Item) ItemResponse {
	return ItemResponse{ID: it.ID, Description: it.Description.String(), Completed: it.Completed}
}

func toListResponse(l *models.List) ListResponse {
	return ListResponse{ID: l.ID, Name: l.Name.String()}
}

// writeError logs err once and writes the mapped status with a generic body.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	status := errhttp.Status(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), msg, "error", err, "status", status)
	} else {
		log.WarnContext(r.Context(), msg, "error", err, "status", status)
	}
	errhttp.WriteError(w, err)
}
