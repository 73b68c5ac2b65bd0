package collectstatic

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/hettlage/superlists/internal/config"
	"github.com/hettlage/superlists/internal/http/handler/webui/common"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "collectstatic",
		Usage: "Write the static assets to the configured static root",
		Action: func(cliCtx *cli.Context) error {
			ctx := cliCtx.Context

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse configuration")
			}

			total, err := Collect(common.Assets(), afero.NewOsFs(), conf.Static.Root)
			if err != nil {
				return errors.Wrapf(err, "could not collect static files to '%s'", conf.Static.Root)
			}

			slog.InfoContext(ctx, "static files collected", slog.Int("total", total), slog.String("root", conf.Static.Root))

			return nil
		},
	}
}

// Collect copies every file of src under root in dst, replacing existing
// files. It returns the number of copied files.
func Collect(src fs.FS, dst afero.Fs, root string) (int, error) {
	total := 0

	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		target := filepath.Join(root, filepath.FromSlash(path))

		if d.IsDir() {
			if err := dst.MkdirAll(target, 0o755); err != nil {
				return errors.WithStack(err)
			}

			return nil
		}

		data, err := fs.ReadFile(src, path)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := afero.WriteFile(dst, target, data, 0o644); err != nil {
			return errors.WithStack(err)
		}

		total++

		return nil
	})
	if err != nil {
		return total, errors.WithStack(err)
	}

	return total, nil
}
