package model

import (
	"strconv"
	"time"
)

type ItemID int64

func (id ItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type Item interface {
	WithID[ItemID]
	WithCreationTime

	ListID() ListID
	Text() string
}

type ReadOnlyItem struct {
	id        ItemID
	listID    ListID
	text      string
	createdAt time.Time
}

// ID implements Item.
func (i *ReadOnlyItem) ID() ItemID {
	return i.id
}

// ListID implements Item.
func (i *ReadOnlyItem) ListID() ListID {
	return i.listID
}

// Text implements Item.
func (i *ReadOnlyItem) Text() string {
	return i.text
}

// CreatedAt implements Item.
func (i *ReadOnlyItem) CreatedAt() time.Time {
	return i.createdAt
}

func NewReadOnlyItem(id ItemID, listID ListID, text string, createdAt time.Time) *ReadOnlyItem {
	return &ReadOnlyItem{
		id:        id,
		listID:    listID,
		text:      text,
		createdAt: createdAt,
	}
}

var _ Item = &ReadOnlyItem{}

// PositionedItem is an item along with its 1-based position in its list.
type PositionedItem struct {
	Item
	Position int
}

// Label returns the item as displayed to users, ie "1: Buy milk".
func (i PositionedItem) Label() string {
	return strconv.Itoa(i.Position) + ": " + i.Text()
}

// Positioned numbers the given items, expected in insertion order.
func Positioned(items []Item) []PositionedItem {
	positioned := make([]PositionedItem, 0, len(items))
	for idx, item := range items {
		positioned = append(positioned, PositionedItem{Item: item, Position: idx + 1})
	}

	return positioned
}
