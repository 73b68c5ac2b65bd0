package csrf

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	httpCtx "github.com/hettlage/superlists/internal/http/context"
)

func TestMiddleware(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret-key"))

	var lastToken string

	handler := Middleware(store, "test", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastToken = httpCtx.CSRFToken(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	// A first safe request issues a token
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusNoContent, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	if lastToken == "" {
		t.Fatalf("token should have been exposed in the request context")
	}

	cookies := res.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("session cookie should have been set")
	}

	token := lastToken

	post := func(token string, withCookies bool) int {
		form := url.Values{}
		form.Set(FieldName, token)
		form.Set("item_text", "Buy milk")

		req := httptest.NewRequest(http.MethodPost, "/lists/new", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		if withCookies {
			for _, c := range cookies {
				req.AddCookie(c)
			}
		}

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res.Code
	}

	if e, g := http.StatusNoContent, post(token, true); e != g {
		t.Errorf("post with token: expected '%d', got '%d'", e, g)
	}

	if e, g := token, lastToken; e != g {
		t.Errorf("token should be stable across requests: expected '%s', got '%s'", e, g)
	}

	if e, g := http.StatusForbidden, post("invalid", true); e != g {
		t.Errorf("post with invalid token: expected '%d', got '%d'", e, g)
	}

	if e, g := http.StatusForbidden, post(token, false); e != g {
		t.Errorf("post without session: expected '%d', got '%d'", e, g)
	}
}
