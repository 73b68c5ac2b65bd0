package context

import (
	"context"
)

const keyCSRFToken contextKey = "csrfToken"

func CSRFToken(ctx context.Context) string {
	token, ok := ctx.Value(keyCSRFToken).(string)
	if !ok {
		return ""
	}

	return token
}

func SetCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, keyCSRFToken, token)
}
