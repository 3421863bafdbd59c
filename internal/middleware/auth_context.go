package middleware

import (
	"context"
	"net/http"
	"strings"

	"microdose-web/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// SessionCookie lleva el ID de sesión. HttpOnly siempre; Secure lo decide
// el deploy (detrás de TLS).
const SessionCookie = "md_session"

// SessionResolver traduce el ID de la cookie a claims + API token.
// Es una func y no el *session.Service directo para que este paquete no
// dependa del dominio (el router arma el closure).
type SessionResolver func(ctx context.Context, sessionID string) (claims auth.Claims, apiToken string, err error)

// AuthContext:
//   - Si hay cookie de sesión válida => claims + API token al contexto.
//   - Modo dev (devMode=true): el header X-Debug-User-ID inyecta claims sin
//     sesión, igual que en los tests end-to-end.
//   - Sin sesión, el request sigue; los guards deciden el redirect.
func AuthContext(resolve SessionResolver, devMode bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" && resolve != nil {
				claims, token, err := resolve(r.Context(), c.Value)
				if err == nil {
					ctx := context.WithValue(r.Context(), claimsKey, claims)
					ctx = auth.WithAPIToken(ctx, token)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				// cookie muerta: se limpia para no revalidarla en cada request
				ClearSessionCookie(w)
			}

			if devMode {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					ctx := context.WithValue(r.Context(), claimsKey, auth.Claims{
						UserID: uid,
						Email:  uid + "@dev.local",
					})
					ctx = auth.WithAPIToken(ctx, "debug-"+uid)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func SetSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
