package setup

import (
	"context"

	"github.com/hettlage/superlists/internal/adapter/cache"
	gormAdapter "github.com/hettlage/superlists/internal/adapter/gorm"
	"github.com/hettlage/superlists/internal/config"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/pkg/errors"
)

var getListStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ListStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var store port.ListStore = gormAdapter.NewListStore(db)

	if conf.Storage.Cache.Size > 0 {
		store = cache.NewListStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL)
	}

	return store, nil
})
