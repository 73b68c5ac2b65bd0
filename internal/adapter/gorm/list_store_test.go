package gorm

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hettlage/superlists/internal/core/port"
	"github.com/hettlage/superlists/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestListStore(t *testing.T) {
	testsuite.TestListStore(t, func(t *testing.T) (port.ListStore, error) {
		db, err := openTestDatabase(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return NewListStore(db), nil
	})
}

func TestItemsAreDeletedWithTheirList(t *testing.T) {
	db, err := openTestDatabase(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := context.Background()
	store := NewListStore(db)

	list, _, err := store.CreateList(ctx, "first")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.AddItem(ctx, list.ID(), "second"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := db.Delete(&List{}, "id = ?", int64(list.ID())).Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var remaining int64
	if err := db.Model(&Item{}).Where("list_id = ?", int64(list.ID())).Count(&remaining).Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), remaining; e != g {
		t.Errorf("remaining items: expected '%d', got '%d'", e, g)
	}
}

func openTestDatabase(t *testing.T) (*gorm.DB, error) {
	dsn := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}
