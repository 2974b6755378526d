package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// GetListItemsHandler handles GET /lists/{id}/todos requests.
type GetListItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetListItemsHandler returns a GetListItemsHandler backed by the given services.
func NewGetListItemsHandler(svc *appsvcs.Services, log logger.Logger) *GetListItemsHandler {
	return &GetListItemsHandler{svc: svc, log: log}
}

// Execute returns the items of a list in ascending id order. The item array
// is served from the Redis read model when cached.
//
//	@Summary		List items
//	@Description	Returns a list's items in ascending id order
//	@Tags			lists
//	@Produce		json
//	@Param			id	path		int	true	"List ID"
//	@Success		200	{array}		ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/lists/{id}/todos [get]
func (h *GetListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Lists.Get(r.Context(), id); err != nil {
		writeError(w, r, h.log, "get list failed", err)
		return
	}

	items, err := h.svc.Items.ListByList(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, "list items failed", err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
