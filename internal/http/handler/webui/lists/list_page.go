package lists

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/hettlage/superlists/internal/core/service"
	"github.com/hettlage/superlists/internal/http/handler/webui/common"
	"github.com/hettlage/superlists/internal/http/handler/webui/lists/component"
	"github.com/pkg/errors"
)

func (h *Handler) redirectToListPage(w http.ResponseWriter, r *http.Request) {
	listID, err := model.ParseListID(r.PathValue("id"))
	if err != nil {
		common.HandleError(w, r, common.ErrListNotFound)
		return
	}

	http.Redirect(w, r, string(component.ListURL(listID)), http.StatusMovedPermanently)
}

func (h *Handler) getListPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillListPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	listPage := component.ListPage(*vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := model.ParseListID(r.PathValue("id"))
	if err != nil {
		common.HandleError(w, r, common.ErrListNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	if _, err := h.listManager.AddItem(ctx, listID, r.FormValue(component.FieldItemText)); err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			slog.DebugContext(ctx, "item rejected", slog.String("listID", listID.String()), slogx.Error(err))
			h.renderInvalidListPage(w, r, validationErr.UserMessage())
			return
		}

		if errors.Is(err, port.ErrNotFound) {
			common.HandleError(w, r, common.ErrListNotFound)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	http.Redirect(w, r, string(component.ListURL(listID)), http.StatusSeeOther)
}

func (h *Handler) renderInvalidListPage(w http.ResponseWriter, r *http.Request, formError string) {
	vmodel, err := h.fillListPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Form.Error = formError

	listPage := component.ListPage(*vmodel)

	templ.Handler(listPage, templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
}

func (h *Handler) fillListPageViewModel(r *http.Request) (*component.ListPageVModel, error) {
	vmodel := &component.ListPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillListPageVModelList,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillListPageVModelList(ctx context.Context, vmodel *component.ListPageVModel, r *http.Request) error {
	listID, err := model.ParseListID(r.PathValue("id"))
	if err != nil {
		return common.ErrListNotFound
	}

	list, items, err := h.listManager.GetList(ctx, listID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return common.ErrListNotFound
		}

		return errors.WithStack(err)
	}

	vmodel.List = list
	vmodel.Items = items
	vmodel.Form = component.NewItemFormVModel{
		Action: component.AddItemURL(list.ID()),
	}

	return nil
}
