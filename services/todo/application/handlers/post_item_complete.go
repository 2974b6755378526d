package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/logger"
	pkgvalidator "github.com/ghuser/todolists/pkg/validator"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// SetItemCompleteRequest is the request body for the legacy
// POST /todos/{id}/set-complete route.
type SetItemCompleteRequest struct {
	Complete *bool `json:"complete" validate:"required" example:"true"`
} // @name SetItemCompleteRequest

// PostItemCompleteHandler handles the legacy POST /todos/{id}/set-complete
// route, which answers with a redirect instead of JSON.
type PostItemCompleteHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemCompleteHandler returns a PostItemCompleteHandler backed by the given services.
func NewPostItemCompleteHandler(svc *appsvcs.Services, log logger.Logger) *PostItemCompleteHandler {
	return &PostItemCompleteHandler{svc: svc, log: log}
}

// Execute sets the completed flag of one item and redirects to the index.
//
//	@Summary		Set item completed (legacy)
//	@Description	Sets the completed flag of an item and redirects to the index page
//	@Tags			todos
//	@Accept			json
//	@Param			id		path	int						true	"Item ID"
//	@Param			request	body	SetItemCompleteRequest	true	"New completed state"
//	@Success		302
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/todos/{id}/set-complete [post]
func (h *PostItemCompleteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SetItemCompleteRequest](w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Items.SetCompleted(r.Context(), id, *req.Complete); err != nil {
		writeError(w, r, h.log, "set item complete failed", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
