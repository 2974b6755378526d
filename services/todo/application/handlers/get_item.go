package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// GetItemHandler handles GET /todos/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, log logger.Logger) *GetItemHandler {
	return &GetItemHandler{svc: svc, log: log}
}

// Execute returns a single item.
//
//	@Summary		Get item
//	@Tags			todos
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/todos/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, "get item failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
