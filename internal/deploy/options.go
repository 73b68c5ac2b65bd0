package deploy

import (
	"context"

	"github.com/hettlage/superlists/internal/config"
)

type CommitResolver func(ctx context.Context) (string, error)

type Options struct {
	RemoteUser string
	Server     string
	Host       string
	RepoURL    string
	// Resolves the commit the remote checkout is reset to
	ResolveCommit CommitResolver
	// Generates the secret key written to the .env file
	GenerateSecret func() (string, error)
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		RepoURL: config.DefaultRepositoryURL,
		ResolveCommit: func(ctx context.Context) (string, error) {
			return LocalCommit(".")
		},
		GenerateSecret: GenerateSecretKey,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithTarget(remoteUser string, server string, host string) OptionFunc {
	return func(opts *Options) {
		opts.RemoteUser = remoteUser
		opts.Server = server
		opts.Host = host
	}
}

func WithRepoURL(repoURL string) OptionFunc {
	return func(opts *Options) {
		opts.RepoURL = repoURL
	}
}

func WithCommitResolver(resolve CommitResolver) OptionFunc {
	return func(opts *Options) {
		opts.ResolveCommit = resolve
	}
}

func WithSecretGenerator(generate func() (string, error)) OptionFunc {
	return func(opts *Options) {
		opts.GenerateSecret = generate
	}
}

// FromConfig sets the target and repository from the deployment
// configuration.
func FromConfig(conf *config.Deploy) OptionFunc {
	return func(opts *Options) {
		opts.RemoteUser = conf.RemoteUser
		opts.Server = conf.Server
		opts.Host = conf.Host

		if conf.RepoURL != "" {
			opts.RepoURL = conf.RepoURL
		}
	}
}
