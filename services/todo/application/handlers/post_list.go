package handlers

import (
	"net/http"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	pkgvalidator "github.com/ghuser/todolists/pkg/validator"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// CreateListRequest is the request body for POST /lists/create.
type CreateListRequest struct {
	Name string `json:"name" validate:"required" example:"Groceries"`
} // @name CreateListRequest

// ListResponse is the public representation of a list.
type ListResponse struct {
	ID   int64  `json:"id"   example:"1"`
	Name string `json:"name" example:"Groceries"`
} // @name ListResponse

// PostListHandler handles POST /lists/create requests.
type PostListHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostListHandler returns a PostListHandler backed by the given services.
func NewPostListHandler(svc *appsvcs.Services, log logger.Logger) *PostListHandler {
	return &PostListHandler{svc: svc, log: log}
}

// Execute creates a new list.
//
//	@Summary		Create list
//	@Tags			lists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListRequest	true	"List creation request"
//	@Success		200		{object}	ListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/lists/create [post]
func (h *PostListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateListRequest](w, r)
	if !ok {
		return
	}

	list, err := h.svc.Lists.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, h.log, "create list failed", err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(list))
}
