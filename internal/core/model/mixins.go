package model

import (
	"time"
)

type WithID[T ~int64] interface {
	ID() T
}

type WithCreationTime interface {
	CreatedAt() time.Time
}
