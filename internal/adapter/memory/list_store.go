package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/pkg/errors"
)

// ListStore keeps lists in process memory.
// Its content does not survive a restart.
type ListStore struct {
	mutex      sync.RWMutex
	lists      map[model.ListID]model.List
	items      map[model.ListID][]model.Item
	nextListID model.ListID
	nextItemID model.ItemID
	now        func() time.Time
}

// CreateList implements port.ListStore.
func (s *ListStore) CreateList(ctx context.Context, firstItemText string) (model.List, model.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextListID++
	s.nextItemID++

	now := s.now()

	list := model.NewReadOnlyList(s.nextListID, now)
	item := model.NewReadOnlyItem(s.nextItemID, list.ID(), firstItemText, now)

	s.lists[list.ID()] = list
	s.items[list.ID()] = []model.Item{item}

	return list, item, nil
}

// GetListByID implements port.ListStore.
func (s *ListStore) GetListByID(ctx context.Context, id model.ListID) (model.List, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	list, exists := s.lists[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return list, nil
}

// AddItem implements port.ListStore.
func (s *ListStore) AddItem(ctx context.Context, listID model.ListID, text string) (model.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.lists[listID]; !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	s.nextItemID++

	item := model.NewReadOnlyItem(s.nextItemID, listID, text, s.now())
	s.items[listID] = append(s.items[listID], item)

	return item, nil
}

// QueryItems implements port.ListStore.
func (s *ListStore) QueryItems(ctx context.Context, listID model.ListID) ([]model.Item, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items, exists := s.items[listID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return append([]model.Item{}, items...), nil
}

// CountLists implements port.ListStore.
func (s *ListStore) CountLists(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.lists)), nil
}

func NewListStore() *ListStore {
	return &ListStore{
		lists: make(map[model.ListID]model.List),
		items: make(map[model.ListID][]model.Item),
		now:   time.Now,
	}
}

var _ port.ListStore = &ListStore{}
