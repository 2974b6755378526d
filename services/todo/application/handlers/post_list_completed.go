package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/logger"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// PostListCompletedHandler handles POST /lists/{id}/set-completed requests.
type PostListCompletedHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostListCompletedHandler returns a PostListCompletedHandler backed by the given services.
func NewPostListCompletedHandler(svc *appsvcs.Services, log logger.Logger) *PostListCompletedHandler {
	return &PostListCompletedHandler{svc: svc, log: log}
}

// Execute marks every item of the list completed. The response has no body.
//
//	@Summary		Complete list
//	@Description	Marks every item of the list completed
//	@Tags			lists
//	@Param			id	path	int	true	"List ID"
//	@Success		200
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/lists/{id}/set-completed [post]
func (h *PostListCompletedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Lists.CompleteAll(r.Context(), id); err != nil {
		writeError(w, r, h.log, "complete list failed", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
