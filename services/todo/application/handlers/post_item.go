package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	pkgvalidator "github.com/ghuser/todolists/pkg/validator"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// CreateItemRequest is the request body for POST /todos/create.
type CreateItemRequest struct {
	Description string `json:"description" validate:"required" example:"Buy milk"`
	ListID      int64  `json:"list_id"     validate:"required,gt=0" example:"1"`
} // @name CreateItemRequest

// ItemResponse is the public representation of an item.
type ItemResponse struct {
	ID          int64  `json:"id"          example:"42"`
	Description string `json:"description" example:"Buy milk"`
	Completed   bool   `json:"completed"   example:"false"`
} // @name ItemResponse

// PostItemHandler handles POST /todos/create requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute creates a new item in an existing list.
//
//	@Summary		Create item
//	@Description	Creates an uncompleted item in the given list
//	@Tags			todos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/todos/create [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.Create(r.Context(), req.ListID, req.Description)
	if err != nil {
		writeError(w, r, h.log, "create item failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
