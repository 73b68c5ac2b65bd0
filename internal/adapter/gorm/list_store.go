package gorm

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ListStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// CreateList implements port.ListStore.
func (s *ListStore) CreateList(ctx context.Context, firstItemText string) (model.List, model.Item, error) {
	var (
		list *List
		item *Item
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		list = &List{}

		if err := db.Create(list).Error; err != nil {
			return errors.WithStack(err)
		}

		item = &Item{
			ListID: list.ID,
			Text:   firstItemText,
		}

		if err := db.Create(item).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return &wrappedList{list}, &wrappedItem{item}, nil
}

// GetListByID implements port.ListStore.
func (s *ListStore) GetListByID(ctx context.Context, id model.ListID) (model.List, error) {
	var list List

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&list, "id = ?", int64(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedList{&list}, nil
}

// AddItem implements port.ListStore.
func (s *ListStore) AddItem(ctx context.Context, listID model.ListID, text string) (model.Item, error) {
	var item *Item

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := assertListExists(db, listID); err != nil {
			return errors.WithStack(err)
		}

		item = &Item{
			ListID: uint(listID),
			Text:   text,
		}

		if err := db.Create(item).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedItem{item}, nil
}

// QueryItems implements port.ListStore.
func (s *ListStore) QueryItems(ctx context.Context, listID model.ListID) ([]model.Item, error) {
	var items []*Item

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := assertListExists(db, listID); err != nil {
			return errors.WithStack(err)
		}

		if err := db.Where("list_id = ?", int64(listID)).Order("id asc").Find(&items).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedItems := make([]model.Item, 0, len(items))
	for _, i := range items {
		wrappedItems = append(wrappedItems, &wrappedItem{i})
	}

	return wrappedItems, nil
}

// CountLists implements port.ListStore.
func (s *ListStore) CountLists(ctx context.Context) (int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&List{}).Count(&total).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

func assertListExists(db *gorm.DB, listID model.ListID) error {
	var count int64
	if err := db.Model(&List{}).Where("id = ?", int64(listID)).Count(&count).Error; err != nil {
		return errors.WithStack(err)
	}

	if count == 0 {
		return errors.WithStack(port.ErrNotFound)
	}

	return nil
}

func (s *ListStore) withRetry(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := 100 * time.Millisecond
	maxRetries := 10
	retries := 0

	for {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := fn(ctx, tx); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			if retries >= maxRetries {
				return errors.WithStack(err)
			}

			var sqliteErr *sqlite3.Error
			if errors.As(err, &sqliteErr) {
				if !slices.Contains(codes, sqliteErr.Code()) {
					return errors.WithStack(err)
				}

				slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

				retries++

				select {
				case <-ctx.Done():
					return errors.WithStack(ctx.Err())
				case <-time.After(backoff):
				}

				backoff *= 2
				continue
			}

			return errors.WithStack(err)
		}

		return nil
	}
}

func NewListStore(db *gorm.DB) *ListStore {
	return &ListStore{
		getDatabase: createGetDatabase(db),
	}
}

var _ port.ListStore = &ListStore{}
