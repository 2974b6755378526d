package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	pkgvalidator "github.com/ghuser/todolists/pkg/validator"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// SetItemCompletedRequest is the request body for POST /todos/{id}/set-completed.
type SetItemCompletedRequest struct {
	Completed *bool `json:"completed" validate:"required" example:"true"`
} // @name SetItemCompletedRequest

// PostItemCompletedHandler handles POST /todos/{id}/set-completed requests.
type PostItemCompletedHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemCompletedHandler returns a PostItemCompletedHandler backed by the given services.
func NewPostItemCompletedHandler(svc *appsvcs.Services, log logger.Logger) *PostItemCompletedHandler {
	return &PostItemCompletedHandler{svc: svc, log: log}
}

// Execute sets the completed flag of one item.
//
//	@Summary		Set item completed
//	@Description	Sets or clears the completed flag of an item
//	@Tags			todos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Item ID"
//	@Param			request	body		SetItemCompletedRequest	true	"New completed state"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/todos/{id}/set-completed [post]
func (h *PostItemCompletedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SetItemCompletedRequest](w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Items.SetCompleted(r.Context(), id, *req.Completed); err != nil {
		writeError(w, r, h.log, "set item completed failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, SuccessResponse{Success: true})
}
