package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseLoggerLevel(t *testing.T) {
	type testCase struct {
		Raw         string
		Expected    slog.Level
		ExpectError bool
	}

	testCases := []testCase{
		{Raw: "", Expected: slog.LevelInfo},
		{Raw: "DEBUG", Expected: slog.LevelDebug},
		{Raw: "warn", Expected: slog.LevelWarn},
		{Raw: "ERROR", Expected: slog.LevelError},
		{Raw: "INFO+2", Expected: slog.LevelInfo + 2},
		{Raw: "0", ExpectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Raw, func(t *testing.T) {
			if tc.Raw != "" {
				t.Setenv("SUPERLISTS_LOGGER_LEVEL", tc.Raw)
			}

			conf, err := Parse()
			if tc.ExpectError {
				if err == nil {
					t.Errorf("Parse(): expected an error for level '%s', got nil", tc.Raw)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, conf.Logger.Level; e != g {
				t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Setenv("SUPERLISTS_LOGGER_LEVEL", "DEBUG")
	t.Setenv("SUPERLISTS_HTTP_ADDRESS", ":9000")
	t.Setenv("SUPERLISTS_STORAGE_DATABASE_DSN", "test.sqlite3")
	t.Setenv("PRODUCTION_MODE", "y")
	t.Setenv("SITENAME", "superlists.example.com")
	t.Setenv("DJANGO_SECRET_KEY", "secret")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}

	if e, g := ":9000", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := "test.sqlite3", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected '%s', got '%s'", e, g)
	}

	if !conf.Site.IsProduction() {
		t.Errorf("conf.Site.IsProduction(): expected true, got false")
	}

	if e, g := "superlists.example.com", conf.Site.Name; e != g {
		t.Errorf("conf.Site.Name: expected '%s', got '%s'", e, g)
	}

	if e, g := "secret", conf.Site.SecretKey; e != g {
		t.Errorf("conf.Site.SecretKey: expected '%s', got '%s'", e, g)
	}
}

func TestParseDeploy(t *testing.T) {
	t.Setenv("REMOTE_USER", "elspeth")
	t.Setenv("SERVER", "staging.example.com")
	t.Setenv("HOST", "superlists-staging.example.com")
	t.Setenv("DEPLOY_SSH_TIMEOUT", "5s")

	conf, err := ParseDeploy()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "elspeth", conf.RemoteUser; e != g {
		t.Errorf("conf.RemoteUser: expected '%s', got '%s'", e, g)
	}

	if e, g := DefaultRepositoryURL, conf.RepoURL; e != g {
		t.Errorf("conf.RepoURL: expected '%s', got '%s'", e, g)
	}

	if e, g := 22, conf.SSH.Port; e != g {
		t.Errorf("conf.SSH.Port: expected '%d', got '%d'", e, g)
	}

	if e, g := 5*time.Second, conf.SSH.Timeout; e != g {
		t.Errorf("conf.SSH.Timeout: expected '%v', got '%v'", e, g)
	}
}

func TestParseDeployRequiresTarget(t *testing.T) {
	t.Setenv("REMOTE_USER", "")
	t.Setenv("SERVER", "")
	t.Setenv("HOST", "")

	if _, err := ParseDeploy(); err == nil {
		t.Errorf("ParseDeploy(): expected an error when target variables are empty")
	}
}

func TestConfigLogValueHidesSecrets(t *testing.T) {
	conf := &Config{
		Sentry: Sentry{DSN: "https://public@sentry.example.com/1"},
		Site:   Site{Name: "superlists.example.com", SecretKey: "supersecret"},
	}

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("using configuration", slog.Any("config", conf))

	output := buf.String()

	if strings.Contains(output, "supersecret") {
		t.Errorf("output should not contain the secret key, got '%s'", output)
	}

	if strings.Contains(output, "public@sentry") {
		t.Errorf("output should not contain the sentry dsn, got '%s'", output)
	}

	if !strings.Contains(output, "superlists.example.com") {
		t.Errorf("output should contain the site name, got '%s'", output)
	}
}
