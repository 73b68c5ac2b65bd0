package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hettlage/superlists/internal/adapter/memory"
	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/hettlage/superlists/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestListStore(t *testing.T) {
	testsuite.TestListStore(t, func(t *testing.T) (port.ListStore, error) {
		return NewListStore(memory.NewListStore(), 100, time.Minute), nil
	})
}

func TestListStoreCachesLists(t *testing.T) {
	backend := newCountingStore()
	store := NewListStore(backend, 100, time.Minute)

	ctx := context.Background()

	list, _, err := backend.CreateList(ctx, "Buy milk")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 5 {
		retrieved, err := store.GetListByID(ctx, list.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := list.ID(), retrieved.ID(); e != g {
			t.Errorf("retrieved.ID(): expected '%d', got '%d'", e, g)
		}
	}

	if e, g := int64(1), backend.getListCalls.Load(); e != g {
		t.Errorf("backend.GetListByID() calls: expected '%d', got '%d'", e, g)
	}

	if _, err := store.GetListByID(ctx, 12345); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetListByID(): expected port.ErrNotFound, got '%v'", err)
	}

	// Missing lists are not cached
	if _, err := store.GetListByID(ctx, 12345); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetListByID(): expected port.ErrNotFound, got '%v'", err)
	}

	if e, g := int64(3), backend.getListCalls.Load(); e != g {
		t.Errorf("backend.GetListByID() calls: expected '%d', got '%d'", e, g)
	}
}

type countingStore struct {
	*memory.ListStore
	getListCalls atomic.Int64
}

func newCountingStore() *countingStore {
	return &countingStore{ListStore: memory.NewListStore()}
}

func (s *countingStore) GetListByID(ctx context.Context, id model.ListID) (model.List, error) {
	s.getListCalls.Add(1)
	return s.ListStore.GetListByID(ctx, id)
}

var _ port.ListStore = &countingStore{}
