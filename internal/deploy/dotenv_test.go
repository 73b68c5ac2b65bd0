package deploy

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func TestAppend(t *testing.T) {
	fs := afero.NewMemMapFs()

	type step struct {
		Line             string
		ExpectedAppended bool
		ExpectedContent  string
	}

	steps := []step{
		{Line: "PRODUCTION_MODE=y", ExpectedAppended: true, ExpectedContent: "PRODUCTION_MODE=y\n"},
		{Line: "PRODUCTION_MODE=y", ExpectedAppended: false, ExpectedContent: "PRODUCTION_MODE=y\n"},
		{Line: "SITENAME=example.com", ExpectedAppended: true, ExpectedContent: "PRODUCTION_MODE=y\nSITENAME=example.com\n"},
		{Line: "SITENAME=example", ExpectedAppended: true, ExpectedContent: "PRODUCTION_MODE=y\nSITENAME=example.com\nSITENAME=example\n"},
	}

	for i, s := range steps {
		appended, err := Append(fs, "/site/.env", s.Line)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := s.ExpectedAppended, appended; e != g {
			t.Errorf("[%d] appended: expected '%v', got '%v'", i, e, g)
		}

		data, err := afero.ReadFile(fs, "/site/.env")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := s.ExpectedContent, string(data); e != g {
			t.Errorf("[%d] content: expected '%q', got '%q'", i, e, g)
		}
	}
}

func TestContains(t *testing.T) {
	fs := afero.NewMemMapFs()

	contains, err := Contains(fs, "/site/.env", SecretKeyName)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if contains {
		t.Errorf("missing file should not contain anything")
	}

	if err := afero.WriteFile(fs, "/site/.env", []byte("DJANGO_SECRET_KEY=abc\n"), 0o600); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	contains, err = Contains(fs, "/site/.env", SecretKeyName)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !contains {
		t.Errorf("file should contain '%s'", SecretKeyName)
	}
}

func TestGenerateSecretKey(t *testing.T) {
	first, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !secretLinePattern.MatchString(SecretKeyName + "=" + first) {
		t.Errorf("secret: expected 50 lowercase alphanumeric characters, got '%s'", first)
	}

	second, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if first == second {
		t.Errorf("two generated secrets should differ")
	}
}
