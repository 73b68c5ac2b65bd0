package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hettlage/superlists/internal/adapter/memory"
	"github.com/hettlage/superlists/internal/core/service"
	"github.com/hettlage/superlists/internal/http/handler/api"
	"github.com/pkg/errors"
)

func TestClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", api.NewHandler(service.NewListManager(memory.NewListStore()))))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	ctx := context.Background()

	list, err := client.CreateList(ctx, "Buy peacock feathers")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	item, err := client.AddItem(ctx, list.ID, "Use peacock feathers to make a fly")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, item.Position; e != g {
		t.Errorf("item.Position: expected '%d', got '%d'", e, g)
	}

	retrieved, err := client.GetList(ctx, list.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(retrieved.Items); e != g {
		t.Fatalf("len(retrieved.Items): expected '%d', got '%d'", e, g)
	}

	if e, g := "Buy peacock feathers", retrieved.Items[0].Text; e != g {
		t.Errorf("retrieved.Items[0].Text: expected '%s', got '%s'", e, g)
	}

	if _, err := client.GetList(ctx, 12345); !IsNotFound(err) {
		t.Errorf("client.GetList(): expected a not found error, got '%v'", err)
	}

	_, err = client.CreateList(ctx, "  ")
	if !IsBadRequest(err) {
		t.Fatalf("client.CreateList(): expected a bad request error, got '%v'", err)
	}

	if !strings.Contains(err.Error(), service.ErrEmptyItem.UserMessage()) {
		t.Errorf("err.Error(): expected to contain '%s', got '%s'", service.ErrEmptyItem.UserMessage(), err.Error())
	}
}

func TestRateLimitTransport(t *testing.T) {
	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list": {"id": 1, "items": []}}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	list, err := client.CreateList(context.Background(), "Buy milk")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), list.ID; e != g {
		t.Errorf("list.ID: expected '%d', got '%d'", e, g)
	}

	if e, g := int64(3), calls.Load(); e != g {
		t.Errorf("calls: expected '%d', got '%d'", e, g)
	}
}

func TestRateLimitTransportDoesNotModifyRequest(t *testing.T) {
	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}

		if e, g := `{"text":"Buy milk"}`, string(body); e != g {
			t.Errorf("body: expected '%s', got '%s'", e, g)
		}

		if calls.Add(1) < 2 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, server.URL, strings.NewReader(`{"text":"Buy milk"}`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	originalBody := req.Body

	transport := &RateLimitTransport{MaxRetries: 3, DefaultWait: 10 * time.Millisecond}

	res, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusCreated, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if e, g := int64(2), calls.Load(); e != g {
		t.Errorf("calls: expected '%d', got '%d'", e, g)
	}

	if req.Body != originalBody {
		t.Errorf("req.Body: expected the caller's body to be left untouched")
	}
}

func newTestClient(t *testing.T, rawURL string) *Client {
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return New(
		WithBaseURL(baseURL),
		WithHTTPClient(&http.Client{
			Timeout: 5 * time.Second,
			Transport: &RateLimitTransport{
				MaxRetries:  3,
				DefaultWait: 10 * time.Millisecond,
			},
		}),
	)
}
