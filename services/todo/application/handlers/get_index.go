package handlers

import (
	"fmt"
	"net/http"
)

// GetIndexHandler handles GET / by redirecting to the configured index list.
type GetIndexHandler struct {
	indexListID int64
}

// NewGetIndexHandler returns a GetIndexHandler redirecting to /lists/{indexListID}.
func NewGetIndexHandler(indexListID int64) *GetIndexHandler {
	return &GetIndexHandler{indexListID: indexListID}
}

// Execute redirects to the index list view.
//
//	@Summary	Index
//	@Tags		lists
//	@Success	302
//	@Router		/ [get]
func (h *GetIndexHandler) Execute(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, fmt.Sprintf("/lists/%d", h.indexListID), http.StatusFound)
}
