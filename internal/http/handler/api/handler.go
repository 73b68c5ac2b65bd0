package api

import (
	"net/http"

	"github.com/hettlage/superlists/internal/core/service"
)

type Handler struct {
	listManager *service.ListManager
	mux         *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(listManager *service.ListManager) *Handler {
	h := &Handler{
		listManager: listManager,
		mux:         &http.ServeMux{},
	}

	h.mux.HandleFunc("POST /lists", h.handleCreateList)
	h.mux.HandleFunc("GET /lists/{listID}", h.handleGetList)
	h.mux.HandleFunc("POST /lists/{listID}/items", h.handleAddItem)

	return h
}

var _ http.Handler = &Handler{}
