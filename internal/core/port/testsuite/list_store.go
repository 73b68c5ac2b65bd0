package testsuite

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/pkg/errors"
)

func TestListStore(t *testing.T, factory func(t *testing.T) (port.ListStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.ListStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateListWithFirstItem",
			Run: func(t *testing.T, ctx context.Context, store port.ListStore) error {
				list, item, err := store.CreateList(ctx, "Buy peacock feathers")
				if err != nil {
					return errors.WithStack(err)
				}

				if list.ID() <= 0 {
					t.Errorf("list.ID(): expected a positive id, got '%d'", list.ID())
				}

				if e, g := list.ID(), item.ListID(); e != g {
					t.Errorf("item.ListID(): expected '%d', got '%d'", e, g)
				}

				if e, g := "Buy peacock feathers", item.Text(); e != g {
					t.Errorf("item.Text(): expected '%s', got '%s'", e, g)
				}

				if list.CreatedAt().IsZero() {
					t.Errorf("list.CreatedAt() should not be zero value")
				}

				retrieved, err := store.GetListByID(ctx, list.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := list.ID(), retrieved.ID(); e != g {
					t.Errorf("retrieved.ID(): expected '%d', got '%d'", e, g)
				}

				count, err := store.CountLists(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if count < 1 {
					t.Errorf("count: expected at least 1 list, got '%d'", count)
				}

				return nil
			},
		},
		{
			Name: "ItemsKeepInsertionOrder",
			Run: func(t *testing.T, ctx context.Context, store port.ListStore) error {
				list, _, err := store.CreateList(ctx, "item 1")
				if err != nil {
					return errors.WithStack(err)
				}

				for i := 2; i <= 5; i++ {
					if _, err := store.AddItem(ctx, list.ID(), fmt.Sprintf("item %d", i)); err != nil {
						return errors.WithStack(err)
					}
				}

				items, err := store.QueryItems(ctx, list.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 5, len(items); e != g {
					t.Fatalf("len(items): expected '%d', got '%d'", e, g)
				}

				for idx, item := range items {
					if e, g := fmt.Sprintf("item %d", idx+1), item.Text(); e != g {
						t.Errorf("items[%d].Text(): expected '%s', got '%s'", idx, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "ListsAreIsolated",
			Run: func(t *testing.T, ctx context.Context, store port.ListStore) error {
				first, _, err := store.CreateList(ctx, "Buy peacock feathers")
				if err != nil {
					return errors.WithStack(err)
				}

				second, _, err := store.CreateList(ctx, "Buy milk")
				if err != nil {
					return errors.WithStack(err)
				}

				if first.ID() == second.ID() {
					t.Fatalf("lists should have distinct ids, got '%d' twice", first.ID())
				}

				if _, err := store.AddItem(ctx, first.ID(), "Use peacock feathers to make a fly"); err != nil {
					return errors.WithStack(err)
				}

				items, err := store.QueryItems(ctx, second.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(items); e != g {
					t.Fatalf("len(items): expected '%d', got '%d'", e, g)
				}

				if e, g := "Buy milk", items[0].Text(); e != g {
					t.Errorf("items[0].Text(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "UnknownList",
			Run: func(t *testing.T, ctx context.Context, store port.ListStore) error {
				unknown := model.ListID(999999)

				if _, err := store.GetListByID(ctx, unknown); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetListByID(): expected port.ErrNotFound, got '%v'", err)
				}

				if _, err := store.AddItem(ctx, unknown, "orphan"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("AddItem(): expected port.ErrNotFound, got '%v'", err)
				}

				if _, err := store.QueryItems(ctx, unknown); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("QueryItems(): expected port.ErrNotFound, got '%v'", err)
				}

				return nil
			},
		},
		{
			Name: "ConcurrentAppends",
			Run: func(t *testing.T, ctx context.Context, store port.ListStore) error {
				list, _, err := store.CreateList(ctx, "first")
				if err != nil {
					return errors.WithStack(err)
				}

				total := 20

				var wg sync.WaitGroup
				errs := make(chan error, total)

				for i := range total {
					wg.Add(1)
					go func(i int) {
						defer wg.Done()
						if _, err := store.AddItem(ctx, list.ID(), fmt.Sprintf("concurrent %d", i)); err != nil {
							errs <- errors.WithStack(err)
						}
					}(i)
				}

				wg.Wait()
				close(errs)

				if err, failed := <-errs; failed {
					return err
				}

				items, err := store.QueryItems(ctx, list.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := total+1, len(items); e != g {
					t.Errorf("len(items): expected '%d', got '%d'", e, g)
				}

				if e, g := "first", items[0].Text(); e != g {
					t.Errorf("items[0].Text(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}
