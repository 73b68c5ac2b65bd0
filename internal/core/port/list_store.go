package port

import (
	"context"

	"github.com/hettlage/superlists/internal/core/model"
)

type ListStore interface {
	// CreateList creates a new list holding a first item with the given text.
	// Both records are created atomically.
	CreateList(ctx context.Context, firstItemText string) (model.List, model.Item, error)
	GetListByID(ctx context.Context, id model.ListID) (model.List, error)

	// AddItem appends an item to an existing list.
	// It returns ErrNotFound if the list does not exist.
	AddItem(ctx context.Context, listID model.ListID, text string) (model.Item, error)

	// QueryItems returns the items of a list in insertion order.
	QueryItems(ctx context.Context, listID model.ListID) ([]model.Item, error)
	CountLists(ctx context.Context) (int64, error)
}
