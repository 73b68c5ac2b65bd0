package collectstatic

import (
	"testing"
	"testing/fstest"

	"github.com/hettlage/superlists/internal/http/handler/webui/common"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func TestCollect(t *testing.T) {
	src := fstest.MapFS{
		"base.css":       {Data: []byte("body {}")},
		"images/dot.svg": {Data: []byte("<svg/>")},
	}

	dst := afero.NewMemMapFs()

	if err := afero.WriteFile(dst, "/srv/static/base.css", []byte("outdated"), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	total, err := Collect(src, dst, "/srv/static")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, total; e != g {
		t.Errorf("total: expected '%d', got '%d'", e, g)
	}

	for path, file := range src {
		data, err := afero.ReadFile(dst, "/srv/static/"+path)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := string(file.Data), string(data); e != g {
			t.Errorf("%s: expected '%s', got '%s'", path, e, g)
		}
	}
}

func TestCollectAssets(t *testing.T) {
	dst := afero.NewMemMapFs()

	if _, err := Collect(common.Assets(), dst, "static"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	exists, err := afero.Exists(dst, "static/base.css")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !exists {
		t.Errorf("static/base.css should have been collected")
	}
}
