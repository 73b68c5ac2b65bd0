package config

import "log/slog"

type Site struct {
	// Any non-empty value enables production mode.
	ProductionMode string `env:"PRODUCTION_MODE"`
	Name           string `env:"SITENAME" envDefault:"localhost"`
	SecretKey      string `env:"DJANGO_SECRET_KEY"`
}

func (s Site) IsProduction() bool {
	return s.ProductionMode != ""
}

// LogValue implements slog.LogValuer.
func (s Site) LogValue() slog.Value {
	secretKey := ""
	if s.SecretKey != "" {
		secretKey = "********"
	}

	return slog.GroupValue(
		slog.String("productionMode", s.ProductionMode),
		slog.String("name", s.Name),
		slog.String("secretKey", secretKey),
	)
}
