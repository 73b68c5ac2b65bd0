package setup

import (
	"context"

	"github.com/hettlage/superlists/internal/config"
	"github.com/hettlage/superlists/internal/core/service"
	"github.com/pkg/errors"
)

var getListManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ListManager, error) {
	store, err := getListStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create list store from config")
	}

	return service.NewListManager(store), nil
})
