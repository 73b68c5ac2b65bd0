package gorm

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables backing lists and items.
func Migrate(ctx context.Context, db *gorm.DB) error {
	models := []any{
		&List{},
		&Item{},
	}

	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := Migrate(ctx, db); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db.WithContext(ctx), nil
	}
}
