package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
	Cache    Cache    `envPrefix:"CACHE_"`
}

type Database struct {
	DSN string `env:"DSN" envDefault:"db.sqlite3"`
}

type Cache struct {
	Size int           `env:"SIZE" envDefault:"1000"`
	TTL  time.Duration `env:"TTL" envDefault:"1h"`
}
