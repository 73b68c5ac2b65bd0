package gorm

import (
	"time"

	"github.com/hettlage/superlists/internal/core/model"
)

type List struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	CreatedAt time.Time

	Items []*Item `gorm:"constraint:OnDelete:CASCADE;"`
}

type wrappedList struct {
	l *List
}

// ID implements model.List.
func (w *wrappedList) ID() model.ListID {
	return model.ListID(w.l.ID)
}

// CreatedAt implements model.List.
func (w *wrappedList) CreatedAt() time.Time {
	return w.l.CreatedAt
}

var _ model.List = &wrappedList{}
