package lists

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/hettlage/superlists/internal/core/service"
	"github.com/hettlage/superlists/internal/http/handler/webui/common"
	"github.com/hettlage/superlists/internal/http/handler/webui/lists/component"
	"github.com/pkg/errors"
)

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	h.renderHomePage(w, r, "", http.StatusOK)
}

func (h *Handler) handleNewList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	list, err := h.listManager.NewList(ctx, r.FormValue(component.FieldItemText))
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			slog.DebugContext(ctx, "new list rejected", slogx.Error(err))
			h.renderHomePage(w, r, validationErr.UserMessage(), http.StatusBadRequest)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	http.Redirect(w, r, string(component.ListURL(list.ID())), http.StatusSeeOther)
}

func (h *Handler) renderHomePage(w http.ResponseWriter, r *http.Request, formError string, statusCode int) {
	vmodel := component.HomePageVModel{
		Form: component.NewItemFormVModel{
			Action: "/lists/new",
			Error:  formError,
		},
	}

	homePage := component.HomePage(vmodel)

	templ.Handler(homePage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
