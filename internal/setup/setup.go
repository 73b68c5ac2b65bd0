package setup

import (
	"context"
	"sync"

	"github.com/hettlage/superlists/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes a component factory: the first call builds
// the component, later calls share it (or the error).
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once    sync.Once
		service T
		err     error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			service, err = factory(ctx, conf)
			if err != nil {
				err = errors.WithStack(err)
			}
		})

		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		return service, nil
	}
}
