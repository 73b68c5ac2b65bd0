package setup

import (
	"context"
	"net/http"

	"github.com/hettlage/superlists/internal/config"
	httpServer "github.com/hettlage/superlists/internal/http"
	"github.com/hettlage/superlists/internal/http/handler/api"
	"github.com/hettlage/superlists/internal/http/handler/metrics"
	"github.com/hettlage/superlists/internal/http/handler/webui"
	"github.com/hettlage/superlists/internal/http/handler/webui/common"
	"github.com/hettlage/superlists/internal/http/middleware/csrf"
	"github.com/hettlage/superlists/internal/http/middleware/hosts"
	"github.com/hettlage/superlists/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*httpServer.Server, error) {
	listManager, err := getListManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create list manager from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session store from config")
	}

	protect := csrf.Middleware(sessionStore, conf.HTTP.Session.CookieName, common.ForbiddenHandler())

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: conf.HTTP.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	options := []httpServer.OptionFunc{
		httpServer.WithAddress(conf.HTTP.Address),
		httpServer.WithMount("/static/", common.NewHandler()),
		httpServer.WithMount("/metrics", metrics.NewHandler()),
		httpServer.WithMount("/api/v1/", corsMiddleware.Handler(api.NewHandler(listManager))),
		httpServer.WithMount("/", protect(webui.NewHandler(listManager))),
	}

	if conf.Site.IsProduction() {
		options = append(options, httpServer.WithMiddlewares(hosts.Middleware(conf.Site.Name, "localhost", "127.0.0.1")))
	}

	if conf.HTTP.RateLimit.Enabled {
		options = append(options, httpServer.WithMiddlewares(ratelimit.Middleware(
			ratelimit.WithTrustHeaders(conf.HTTP.TrustProxyHeaders),
			ratelimit.WithLimit(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.CacheTTL),
		)))
	}

	server := httpServer.NewServer(options...)

	return server, nil
}
