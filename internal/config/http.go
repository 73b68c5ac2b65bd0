package config

import "time"

type HTTP struct {
	Address            string    `env:"ADDRESS,expand" envDefault:":8000"`
	TrustProxyHeaders  bool      `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	CORSAllowedOrigins []string  `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimit          RateLimit `envPrefix:"RATE_LIMIT_"`
	Session            Session   `envPrefix:"SESSION_"`
}

type RateLimit struct {
	Enabled   bool          `env:"ENABLED" envDefault:"false"`
	Interval  time.Duration `env:"INTERVAL" envDefault:"1s"`
	MaxBurst  int           `env:"MAX_BURST" envDefault:"10"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"1024"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

type Session struct {
	CookieName   string        `env:"COOKIE_NAME" envDefault:"superlists_session"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	CookieMaxAge time.Duration `env:"COOKIE_MAX_AGE" envDefault:"24h"`
}
