package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// DeleteListHandler handles DELETE /lists/{id}/delete requests.
type DeleteListHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteListHandler returns a DeleteListHandler backed by the given services.
func NewDeleteListHandler(svc *appsvcs.Services, log logger.Logger) *DeleteListHandler {
	return &DeleteListHandler{svc: svc, log: log}
}

// Execute deletes a list and every item in it.
//
//	@Summary		Delete list
//	@Description	Deletes a list together with all of its items
//	@Tags			lists
//	@Produce		json
//	@Param			id	path		int	true	"List ID"
//	@Success		200	{object}	SuccessResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/lists/{id}/delete [delete]
func (h *DeleteListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Lists.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, "delete list failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, SuccessResponse{Success: true})
}
