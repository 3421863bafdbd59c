// Package rest implementa los ports de dominio contra la API remota.
// Request/response pelado: sin retries ni colas offline; el cache corto de
// queries vive en adapters/backend/cached, por encima de este paquete.
package rest

import (
	"context"
	"strings"
	"time"

	"microdose-web/internal/platform/httpclient"
	"microdose-web/internal/ports/auth"
)

// Client agrupa los adapters sobre un httpclient compartido.
type Client struct {
	http *httpclient.Client
}

func NewClient(c *httpclient.Client) *Client {
	return &Client{http: c}
}

// authHeaders arma el Authorization con el bearer token que el middleware
// dejó en el contexto. Sin token, el backend responde 401 y la UI redirige.
func authHeaders(ctx context.Context) map[string]string {
	tok := auth.APITokenFromContext(ctx)
	if tok == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + tok}
}

// parseAPIDate acepta los dos formatos que manda el backend: fecha pelada
// (YYYY-MM-DD) o timestamp RFC3339. Las fechas pelada se interpretan en
// hora local: son fechas de calendario, no instantes.
func parseAPIDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), true
	}
	return time.Time{}, false
}
