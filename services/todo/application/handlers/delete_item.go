package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// DeleteItemHandler handles DELETE /todos/{id}/delete requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, log logger.Logger) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, log: log}
}

// Execute deletes an item. Deleting an unknown id also succeeds.
//
//	@Summary		Delete item
//	@Description	Deletes an item; deleting a missing item is not an error
//	@Tags			todos
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	SuccessResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/todos/{id}/delete [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Items.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, "delete item failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, SuccessResponse{Success: true})
}
