package component

import (
	"github.com/a-h/templ"
	"github.com/hettlage/superlists/internal/core/model"
)

const PageTitle = "To-Do lists"

func ListURL(id model.ListID) templ.SafeURL {
	return templ.SafeURL("/lists/" + id.String() + "/")
}

func AddItemURL(id model.ListID) templ.SafeURL {
	return templ.SafeURL("/lists/" + id.String() + "/add_item")
}
