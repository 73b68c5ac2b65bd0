package hosts

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
)

// Middleware rejects requests whose Host header does not match one of the
// allowed hosts.
func Middleware(allowed ...string) func(http.Handler) http.Handler {
	normalized := make([]string, 0, len(allowed))
	for _, h := range allowed {
		normalized = append(normalized, strings.ToLower(h))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := strings.ToLower(r.Host)
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}

			if !slices.Contains(normalized, host) {
				slog.WarnContext(r.Context(), "invalid host header", slog.String("host", r.Host))
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
