package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// GetListsHandler handles GET /lists requests.
type GetListsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetListsHandler returns a GetListsHandler backed by the given services.
func NewGetListsHandler(svc *appsvcs.Services, log logger.Logger) *GetListsHandler {
	return &GetListsHandler{svc: svc, log: log}
}

// Execute returns every list in ascending id order.
//
//	@Summary		List lists
//	@Tags			lists
//	@Produce		json
//	@Success		200	{array}		ListResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/lists [get]
func (h *GetListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.Lists.GetAll(r.Context())
	if err != nil {
		writeError(w, r, h.log, "get lists failed", err)
		return
	}

	resp := make([]ListResponse, len(lists))
	for i, l := range lists {
		resp[i] = toListResponse(l)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
