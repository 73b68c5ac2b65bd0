package csrf

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/gorilla/sessions"
	"github.com/hettlage/superlists/internal/crypto"
	httpCtx "github.com/hettlage/superlists/internal/http/context"
	"github.com/pkg/errors"
)

const (
	FieldName  = "csrf_token"
	HeaderName = "X-CSRF-Token"

	sessionKey  = "csrf_token"
	tokenLength = 32
)

var safeMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// Middleware binds a token to the client session and rejects unsafe requests
// that do not carry it back, either as a form field or a header.
// The token is exposed to the wrapped handler through the request context.
func Middleware(store sessions.Store, sessionName string, forbidden http.Handler) func(http.Handler) http.Handler {
	if forbidden == nil {
		forbidden = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess, err := store.Get(r, sessionName)
			if err != nil {
				// Undecodable cookies (ie after a key rotation) give a fresh session
				slog.DebugContext(ctx, "could not retrieve session", slogx.Error(err))
			}

			expected, _ := sess.Values[sessionKey].(string)

			if _, safe := safeMethods[r.Method]; !safe {
				submitted := r.Header.Get(HeaderName)
				if submitted == "" {
					submitted = r.PostFormValue(FieldName)
				}

				if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) != 1 {
					slog.WarnContext(ctx, "csrf token mismatch", slog.String("path", r.URL.Path))
					forbidden.ServeHTTP(w, r)
					return
				}
			}

			if expected == "" {
				token, err := crypto.RandomString(crypto.AlphaNumeric, tokenLength)
				if err != nil {
					slog.ErrorContext(ctx, "could not generate csrf token", slogx.Error(errors.WithStack(err)))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				sess.Values[sessionKey] = token

				if err := sess.Save(r, w); err != nil {
					slog.ErrorContext(ctx, "could not save session", slogx.Error(errors.WithStack(err)))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				expected = token
			}

			ctx = httpCtx.SetCSRFToken(ctx, expected)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
