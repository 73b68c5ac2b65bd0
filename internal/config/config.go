package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	HTTP    HTTP    `envPrefix:"HTTP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Static  Static  `envPrefix:"STATIC_"`
	Sentry  Sentry  `envPrefix:"SENTRY_"`

	// Site settings are written to the host's .env file by the deployment
	// and are not prefixed.
	Site Site
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "SUPERLISTS_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	site, err := env.ParseAs[Site]()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	conf.Site = site

	return &conf, nil
}

// LogValue implements slog.LogValuer. Secrets are left out.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("logger", c.Logger),
		slog.Any("http", c.HTTP),
		slog.Any("storage", c.Storage),
		slog.Any("static", c.Static),
		slog.String("sentryEnvironment", c.Sentry.Environment),
		slog.Any("site", c.Site),
	)
}
