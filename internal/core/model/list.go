package model

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type ListID int64

func (id ListID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseListID(raw string) (ListID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "could not parse list id '%s'", raw)
	}

	if id <= 0 {
		return 0, errors.Errorf("invalid list id '%d'", id)
	}

	// Only the canonical form is accepted, so a list has a single url.
	if ListID(id).String() != raw {
		return 0, errors.Errorf("invalid list id '%s'", raw)
	}

	return ListID(id), nil
}

// List is an ordered, append-only collection of items.
// Once created, a list is never modified.
type List interface {
	WithID[ListID]
	WithCreationTime
}

type ReadOnlyList struct {
	id        ListID
	createdAt time.Time
}

// ID implements List.
func (l *ReadOnlyList) ID() ListID {
	return l.id
}

// CreatedAt implements List.
func (l *ReadOnlyList) CreatedAt() time.Time {
	return l.createdAt
}

func NewReadOnlyList(id ListID, createdAt time.Time) *ReadOnlyList {
	return &ReadOnlyList{
		id:        id,
		createdAt: createdAt,
	}
}

var _ List = &ReadOnlyList{}
