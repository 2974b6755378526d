package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/munnerz/goautoneg"

	"github.com/ghuser/todolists/pkg/httpx"
	"github.com/ghuser/todolists/pkg/logger"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
	"github.com/ghuser/todolists/services/todo/domain/models"
)

//go:embed templates/list.html
var templateFS embed.FS

var listTemplate = template.Must(template.ParseFS(templateFS, "templates/list.html"))

const (
	mediaHTML = "text/html"
	mediaJSON = "application/json"
)

// viewOffers lists the renderings of the list page. HTML comes first so it
// wins wildcards and ties.
var viewOffers = []string{mediaHTML, mediaJSON}

// wantsJSON reports whether the Accept header ranks JSON above HTML.
func wantsJSON(r *http.Request) bool {
	return goautoneg.Negotiate(r.Header.Get("Accept"), viewOffers) == mediaJSON
}

// ListViewResponse is the JSON form of the list page.
type ListViewResponse struct {
	Lists      []ListResponse `json:"lists"`
	ActiveList ListResponse   `json:"active_list"`
	Todos      []ItemResponse `json:"todos"`
} // @name ListViewResponse

// GetListHandler handles GET /lists/{id} requests.
type GetListHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services, log logger.Logger) *GetListHandler {
	return &GetListHandler{svc: svc, log: log}
}

// Execute renders the list page: every list, the active list and its items
// in ascending id order. Clients whose Accept header prefers application/json
// get the same data as JSON.
//
//	@Summary		View list
//	@Description	Renders the list page, or returns it as JSON when requested
//	@Tags			lists
//	@Produce		html
//	@Produce		json
//	@Param			id	path		int	true	"List ID"
//	@Success		200	{object}	ListViewResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/lists/{id} [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Lists.View(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, "get list view failed", err)
		return
	}

	if wantsJSON(r) {
		httpx.JSON(w, http.StatusOK, toListViewResponse(view))
		return
	}

	var buf bytes.Buffer
	if err := listTemplate.Execute(&buf, view); err != nil {
		writeError(w, r, h.log, "render list view failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func toListViewResponse(v *models.ListView) ListViewResponse {
	resp := ListViewResponse{
		Lists:      make([]ListResponse, len(v.Lists)),
		ActiveList: toListResponse(v.Active),
		Todos:      make([]ItemResponse, len(v.Items)),
	}
	for i, l := range v.Lists {
		resp.Lists[i] = toListResponse(l)
	}
	for i, it := range v.Items {
		resp.Todos[i] = toItemResponse(it)
	}
	return resp
}
