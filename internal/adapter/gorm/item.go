package gorm

import (
	"time"

	"github.com/hettlage/superlists/internal/core/model"
)

type Item struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	CreatedAt time.Time

	ListID uint `gorm:"not null;index"`

	Text string `gorm:"not null"`
}

type wrappedItem struct {
	i *Item
}

// ID implements model.Item.
func (w *wrappedItem) ID() model.ItemID {
	return model.ItemID(w.i.ID)
}

// ListID implements model.Item.
func (w *wrappedItem) ListID() model.ListID {
	return model.ListID(w.i.ListID)
}

// Text implements model.Item.
func (w *wrappedItem) Text() string {
	return w.i.Text
}

// CreatedAt implements model.Item.
func (w *wrappedItem) CreatedAt() time.Time {
	return w.i.CreatedAt
}

var _ model.Item = &wrappedItem{}
