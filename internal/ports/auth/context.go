package auth

import "context"

type ctxKey string

const tokenKey ctxKey = "api_token"

// WithAPIToken guarda el bearer token del backend en el contexto del request.
// Los adapters REST lo leen para armar el header Authorization.
func WithAPIToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func APITokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey).(string); ok {
		return v
	}
	return ""
}
