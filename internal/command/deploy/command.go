package deploy

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/hettlage/superlists/internal/config"
	"github.com/hettlage/superlists/internal/deploy"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const flagSource = "source"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "deploy",
		Usage: "Deploy the checked out commit to the host designated by the REMOTE_USER, SERVER and HOST environment variables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagSource,
				Value: ".",
				Usage: "Path of the local git checkout whose current commit is deployed",
			},
		},
		Action: func(cliCtx *cli.Context) error {
			ctx := cliCtx.Context

			conf, err := config.ParseDeploy()
			if err != nil {
				return errors.Wrap(err, "could not parse deployment configuration")
			}

			source := cliCtx.String(flagSource)

			remote, err := deploy.DialSSHFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrapf(err, "could not connect to '%s'", conf.Server)
			}

			defer func() {
				if err := remote.Close(); err != nil {
					slog.WarnContext(ctx, "could not close remote connection", slogx.Error(err))
				}
			}()

			deployer := deploy.NewDeployer(
				remote,
				deploy.FromConfig(conf),
				deploy.WithCommitResolver(func(ctx context.Context) (string, error) {
					return deploy.LocalCommit(source)
				}),
			)

			if err := deployer.Deploy(ctx); err != nil {
				return errors.Wrapf(err, "could not deploy to '%s'", conf.Server)
			}

			return nil
		},
	}
}
