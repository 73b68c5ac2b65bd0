package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const DefaultRepositoryURL = "https://github.com/hettlage/superlists.git"

type Deploy struct {
	RemoteUser string    `env:"REMOTE_USER,required,notEmpty"`
	Server     string    `env:"SERVER,required,notEmpty"`
	Host       string    `env:"HOST,required,notEmpty"`
	RepoURL    string    `env:"DEPLOY_REPO_URL" envDefault:"https://github.com/hettlage/superlists.git"`
	SSH        DeploySSH `envPrefix:"DEPLOY_SSH_"`
}

type DeploySSH struct {
	Port                 int           `env:"PORT" envDefault:"22"`
	PrivateKey           string        `env:"PRIVATE_KEY,expand"`
	PrivateKeyPassphrase string        `env:"PRIVATE_KEY_PASSPHRASE"`
	Password             string        `env:"PASSWORD"`
	HostKey              string        `env:"HOST_KEY,expand" envDefault:"${HOME}/.ssh/known_hosts"`
	Timeout              time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func ParseDeploy() (*Deploy, error) {
	conf, err := env.ParseAs[Deploy]()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
