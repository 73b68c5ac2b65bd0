package migrate

import (
	"log/slog"

	"github.com/hettlage/superlists/internal/config"
	"github.com/hettlage/superlists/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending migrations to the configured database",
		Action: func(cliCtx *cli.Context) error {
			ctx := cliCtx.Context

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse configuration")
			}

			if err := setup.MigrateFromConfig(ctx, conf); err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "database migrated", slog.String("dsn", conf.Storage.Database.DSN))

			return nil
		},
	}
}
