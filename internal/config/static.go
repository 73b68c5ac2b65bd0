package config

type Static struct {
	Root string `env:"ROOT" envDefault:"../static"`
}
