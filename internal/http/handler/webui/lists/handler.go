package lists

import (
	"net/http"

	"github.com/hettlage/superlists/internal/core/service"
	"github.com/hettlage/superlists/internal/http/handler/webui/common"
)

type Handler struct {
	mux         *http.ServeMux
	listManager *service.ListManager
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(listManager *service.ListManager) *Handler {
	h := &Handler{
		mux:         http.NewServeMux(),
		listManager: listManager,
	}

	h.mux.HandleFunc("GET /{$}", h.getHomePage)
	h.mux.HandleFunc("POST /lists/new", h.handleNewList)
	h.mux.HandleFunc("GET /lists/{id}", h.redirectToListPage)
	h.mux.HandleFunc("GET /lists/{id}/{$}", h.getListPage)
	h.mux.HandleFunc("POST /lists/{id}/{$}", h.handleAddItem)
	h.mux.HandleFunc("POST /lists/{id}/add_item", h.handleAddItem)
	h.mux.HandleFunc("/", h.getNotFoundPage)

	return h
}

func (h *Handler) getNotFoundPage(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
}

var _ http.Handler = &Handler{}
