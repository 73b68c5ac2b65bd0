package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/hettlage/superlists/internal/config"
	"github.com/hettlage/superlists/internal/crypto"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	var key []byte

	switch {
	case conf.Site.SecretKey != "":
		key = []byte(conf.Site.SecretKey)

	case conf.Site.IsProduction():
		return nil, errors.New("DJANGO_SECRET_KEY must be set in production mode")

	default:
		slog.WarnContext(ctx, "no secret key configured, sessions will not survive a restart")

		randomKey, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		key = randomKey
	}

	sessionStore := sessions.NewCookieStore(key)

	sessionStore.MaxAge(int(conf.HTTP.Session.CookieMaxAge.Seconds()))
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = conf.HTTP.Session.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})
