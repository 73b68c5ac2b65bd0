package setup

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hettlage/superlists/internal/config"
	"github.com/pkg/errors"
)

func TestCreateFromConfigOnce(t *testing.T) {
	var calls atomic.Int64

	getValue := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (int64, error) {
		return calls.Add(1), nil
	})

	for range 3 {
		value, err := getValue(t.Context(), &config.Config{})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := int64(1), value; e != g {
			t.Errorf("value: expected '%d', got '%d'", e, g)
		}
	}

	failing := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*config.Config, error) {
		return nil, errors.New("boom")
	})

	if _, err := failing(t.Context(), &config.Config{}); err == nil {
		t.Errorf("failing(): expected an error, got nil")
	}
}

func TestNewHTTPServerFromConfig(t *testing.T) {
	t.Setenv("SUPERLISTS_STORAGE_DATABASE_DSN", filepath.Join(t.TempDir(), "db.sqlite3"))
	t.Setenv("PRODUCTION_MODE", "y")
	t.Setenv("SITENAME", "superlists.example.com")
	t.Setenv("DJANGO_SECRET_KEY", "test-secret-key")

	conf, err := config.Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := t.Context()

	if err := MigrateFromConfig(ctx, conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server, err := NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler := server.Handler()

	type testCase struct {
		Method         string
		URL            string
		Body           string
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []testCase{
		{Method: http.MethodGet, URL: "http://superlists.example.com/", ExpectedStatus: http.StatusOK, ExpectedBody: "Start a new To-Do list"},
		{Method: http.MethodGet, URL: "http://localhost:8000/", ExpectedStatus: http.StatusOK},
		{Method: http.MethodGet, URL: "http://evil.example.com/", ExpectedStatus: http.StatusBadRequest},
		{Method: http.MethodGet, URL: "http://superlists.example.com/static/base.css", ExpectedStatus: http.StatusOK, ExpectedBody: "#id_new_item"},
		{Method: http.MethodPost, URL: "http://superlists.example.com/lists/new", Body: "item_text=Buy+milk", ExpectedStatus: http.StatusForbidden},
		{Method: http.MethodPost, URL: "http://superlists.example.com/api/v1/lists", Body: `{"text": "Buy milk"}`, ExpectedStatus: http.StatusCreated, ExpectedBody: "Buy milk"},
		{Method: http.MethodGet, URL: "http://superlists.example.com/metrics", ExpectedStatus: http.StatusOK, ExpectedBody: "superlists_total_lists_created"},
	}

	for _, tc := range testCases {
		t.Run(tc.Method+" "+tc.URL, func(t *testing.T) {
			req := httptest.NewRequest(tc.Method, tc.URL, strings.NewReader(tc.Body))
			if tc.Method == http.MethodPost {
				if strings.Contains(tc.URL, "/api/") {
					req.Header.Set("Content-Type", "application/json")
				} else {
					req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				}
			}

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected '%d', got '%d'", e, g)
			}

			body, err := io.ReadAll(res.Body)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.ExpectedBody != "" && !strings.Contains(string(body), tc.ExpectedBody) {
				t.Errorf("body: expected to contain '%s', got '%s'", tc.ExpectedBody, body)
			}
		})
	}
}
