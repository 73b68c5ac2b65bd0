package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/pkg/errors"
)

// ListStore caches list records in front of another store.
// Lists are immutable once created, so entries are never invalidated, only
// evicted. Items are always read from the backend.
type ListStore struct {
	backend   port.ListStore
	listCache *expirable.LRU[model.ListID, model.List]
}

// CreateList implements [port.ListStore].
func (s *ListStore) CreateList(ctx context.Context, firstItemText string) (model.List, model.Item, error) {
	list, item, err := s.backend.CreateList(ctx, firstItemText)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	s.listCache.Add(list.ID(), list)

	return list, item, nil
}

// GetListByID implements [port.ListStore].
func (s *ListStore) GetListByID(ctx context.Context, id model.ListID) (model.List, error) {
	if list, exists := s.listCache.Get(id); exists {
		return list, nil
	}

	list, err := s.backend.GetListByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.listCache.Add(id, list)

	return list, nil
}

// AddItem implements [port.ListStore].
func (s *ListStore) AddItem(ctx context.Context, listID model.ListID, text string) (model.Item, error) {
	return s.backend.AddItem(ctx, listID, text)
}

// QueryItems implements [port.ListStore].
func (s *ListStore) QueryItems(ctx context.Context, listID model.ListID) ([]model.Item, error) {
	return s.backend.QueryItems(ctx, listID)
}

// CountLists implements [port.ListStore].
func (s *ListStore) CountLists(ctx context.Context) (int64, error) {
	return s.backend.CountLists(ctx)
}

func NewListStore(backend port.ListStore, size int, ttl time.Duration) *ListStore {
	return &ListStore{
		backend:   backend,
		listCache: expirable.NewLRU[model.ListID, model.List](size, nil, ttl),
	}
}

var _ port.ListStore = &ListStore{}
