package deploy

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/bornholm/go-x/slogx"
	"github.com/hettlage/superlists/internal/crypto"
	"github.com/hettlage/superlists/internal/workflow"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const (
	SecretKeyName   = "DJANGO_SECRET_KEY"
	SecretKeyLength = 50

	StepCreateDirectoryStructure = "create_directory_structure"
	StepResolveLocalCommit       = "resolve_local_commit"
	StepGetLatestSource          = "get_latest_source"
	StepUpdateBuildEnvironment   = "update_build_environment"
	StepCreateOrUpdateDotenv     = "create_or_update_dotenv"
	StepUpdateStaticFiles        = "update_static_files"
	StepUpdateDatabase           = "update_database"
)

// GenerateSecretKey returns a random key suitable for signing session cookies.
func GenerateSecretKey() (string, error) {
	return crypto.RandomString(crypto.AlphaNumeric, SecretKeyLength)
}

type Deployer struct {
	remote Remote
	opts   *Options
}

// SiteFolder returns the remote folder the site is deployed to.
func (d *Deployer) SiteFolder() string {
	return path.Join("/home", d.opts.RemoteUser, "sites", d.opts.Server)
}

// Deploy provisions the remote host. Every step can be executed again with
// the same outcome, so a deployment can safely be repeated.
func (d *Deployer) Deploy(ctx context.Context) error {
	if d.opts.RemoteUser == "" || d.opts.Server == "" || d.opts.Host == "" {
		return errors.New("remote user, server and host must be defined")
	}

	ctx = slogx.WithAttrs(ctx,
		slog.String("run", xid.New().String()),
		slog.String("server", d.opts.Server),
		slog.String("site_folder", d.SiteFolder()),
	)

	var commit string

	wf := workflow.New(
		workflow.StepFunc(StepCreateDirectoryStructure, d.createDirectoryStructure),
		workflow.StepFunc(StepResolveLocalCommit, func(ctx context.Context) error {
			resolved, err := d.opts.ResolveCommit(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			commit = resolved

			slog.InfoContext(ctx, "deploying local commit", slog.String("commit", commit))

			return nil
		}),
		workflow.StepFunc(StepGetLatestSource, func(ctx context.Context) error {
			return d.getLatestSource(ctx, commit)
		}),
		workflow.StepFunc(StepUpdateBuildEnvironment, d.updateBuildEnvironment),
		workflow.StepFunc(StepCreateOrUpdateDotenv, d.createOrUpdateDotenv),
		workflow.StepFunc(StepUpdateStaticFiles, d.updateStaticFiles),
		workflow.StepFunc(StepUpdateDatabase, d.updateDatabase),
	)

	if err := wf.Execute(ctx); err != nil {
		return errors.WithStack(err)
	}

	slog.InfoContext(ctx, "deployment done")

	return nil
}

func (d *Deployer) createDirectoryStructure(ctx context.Context) error {
	_, err := d.run(ctx, "mkdir -p "+shellescape.Quote(d.SiteFolder()))
	return errors.WithStack(err)
}

func (d *Deployer) getLatestSource(ctx context.Context, commit string) error {
	if commit == "" {
		return errors.New("no commit to deploy")
	}

	exists, err := d.exists(path.Join(d.SiteFolder(), ".git"))
	if err != nil {
		return errors.WithStack(err)
	}

	if exists {
		if _, err := d.runInSite(ctx, "git fetch"); err != nil {
			return errors.WithStack(err)
		}
	} else {
		if _, err := d.runInSite(ctx, "git clone "+shellescape.Quote(d.opts.RepoURL)+" ."); err != nil {
			return errors.WithStack(err)
		}
	}

	if _, err := d.runInSite(ctx, "git reset --hard "+shellescape.Quote(commit)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (d *Deployer) updateBuildEnvironment(ctx context.Context) error {
	commands := []string{
		"mkdir -p bin",
		"go mod download",
		"go build -o bin/superlists-server ./cmd/server",
		"go build -o bin/superlists ./cmd/superlists",
	}

	for _, cmd := range commands {
		if _, err := d.runInSite(ctx, cmd); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func (d *Deployer) createOrUpdateDotenv(ctx context.Context) error {
	fs := d.remote.Fs()
	dotenv := path.Join(d.SiteFolder(), ".env")

	lines := []string{
		"PRODUCTION_MODE=y",
		"SITENAME=" + d.opts.Host,
	}

	hasSecret, err := Contains(fs, dotenv, SecretKeyName)
	if err != nil {
		return errors.Wrapf(err, "could not read '%s'", dotenv)
	}

	if !hasSecret {
		secret, err := d.opts.GenerateSecret()
		if err != nil {
			return errors.Wrap(err, "could not generate secret key")
		}

		lines = append(lines, SecretKeyName+"="+secret)
	}

	for _, line := range lines {
		appended, err := Append(fs, dotenv, line)
		if err != nil {
			return errors.Wrapf(err, "could not update '%s'", dotenv)
		}

		if appended {
			key, _, _ := strings.Cut(line, "=")
			slog.InfoContext(ctx, "dotenv entry added", slog.String("key", key))
		}
	}

	return nil
}

func (d *Deployer) updateStaticFiles(ctx context.Context) error {
	_, err := d.runInSite(ctx, withDotenv("bin/superlists collectstatic"))
	return errors.WithStack(err)
}

func (d *Deployer) updateDatabase(ctx context.Context) error {
	_, err := d.runInSite(ctx, withDotenv("bin/superlists migrate"))
	return errors.WithStack(err)
}

func (d *Deployer) exists(name string) (bool, error) {
	if _, err := d.remote.Fs().Stat(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, errors.WithStack(err)
	}

	return true, nil
}

func (d *Deployer) runInSite(ctx context.Context, cmd string) (string, error) {
	return d.run(ctx, "cd "+shellescape.Quote(d.SiteFolder())+" && "+cmd)
}

func (d *Deployer) run(ctx context.Context, cmd string) (string, error) {
	slog.DebugContext(ctx, "running remote command", slog.String("command", cmd))

	stdout, err := d.remote.Run(ctx, cmd)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return stdout, nil
}

// withDotenv exports the variables of the site's .env file to the command.
func withDotenv(cmd string) string {
	return "set -a && . ./.env && set +a && " + cmd
}

func NewDeployer(remote Remote, funcs ...OptionFunc) *Deployer {
	opts := NewOptions(funcs...)
	return &Deployer{
		remote: remote,
		opts:   opts,
	}
}
