package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/hettlage/superlists/internal/core/service"
	"github.com/pkg/errors"
)

type ItemTextRequest struct {
	Text string `json:"text"`
}

type Item struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Text     string `json:"text"`
}

type List struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url"`
	Items     []Item    `json:"items"`
}

type GetListResponse struct {
	List List `json:"list"`
}

type AddItemResponse struct {
	Item Item `json:"item"`
}

func (h *Handler) handleCreateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ItemTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.DebugContext(ctx, "could not decode request", slogx.Error(err))
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := h.listManager.NewList(ctx, req.Text)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	h.writeList(w, r, http.StatusCreated, list.ID())
}

func (h *Handler) handleGetList(w http.ResponseWriter, r *http.Request) {
	listID, err := model.ParseListID(r.PathValue("listID"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	h.writeList(w, r, http.StatusOK, listID)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := model.ParseListID(r.PathValue("listID"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	var req ItemTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.DebugContext(ctx, "could not decode request", slogx.Error(err))
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.listManager.AddItem(ctx, listID, req.Text)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	_, items, err := h.listManager.GetList(ctx, listID)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	res := AddItemResponse{
		Item: Item{
			ID:   int64(item.ID()),
			Text: item.Text(),
		},
	}

	for _, i := range items {
		if i.ID() == item.ID() {
			res.Item.Position = i.Position
			break
		}
	}

	writeJSON(w, r, http.StatusCreated, res)
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, statusCode int, listID model.ListID) {
	list, items, err := h.listManager.GetList(r.Context(), listID)
	if err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	res := GetListResponse{
		List: List{
			ID:        int64(list.ID()),
			CreatedAt: list.CreatedAt(),
			URL:       "/lists/" + list.ID().String() + "/",
			Items:     make([]Item, 0, len(items)),
		},
	}

	for _, i := range items {
		res.List.Items = append(res.List.Items, Item{
			ID:       int64(i.ID()),
			Position: i.Position,
			Text:     i.Text(),
		})
	}

	writeJSON(w, r, statusCode, res)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, r, http.StatusBadRequest, validationErr.UserMessage())
		return
	}

	if errors.Is(err, port.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(err))
	writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
