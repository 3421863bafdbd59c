// Package remote implementa auth.Authenticator contra el servicio de auth
// del backend. La UI nunca ve passwords más allá de reenviarlos acá.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"microdose-web/internal/platform/httpclient"
	"microdose-web/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("auth client not configured")
	ErrUnauthorized  = errors.New("invalid credentials")
	ErrUpstream      = errors.New("auth upstream error")
)

type Authenticator struct {
	http *httpclient.Client
}

func NewAuthenticator(c *httpclient.Client) *Authenticator {
	return &Authenticator{http: c}
}

func (a *Authenticator) IsConfigured() bool {
	return a != nil && a.http != nil && a.http.BaseURL != ""
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type accountResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Token       string `json:"token"`
}

func (a *Authenticator) Login(ctx context.Context, creds auth.Credentials) (auth.Account, error) {
	return a.authenticate(ctx, "/auth/login", creds)
}

func (a *Authenticator) Signup(ctx context.Context, creds auth.Credentials) (auth.Account, error) {
	return a.authenticate(ctx, "/auth/signup", creds)
}

func (a *Authenticator) authenticate(ctx context.Context, path string, creds auth.Credentials) (auth.Account, error) {
	if !a.IsConfigured() {
		return auth.Account{}, ErrNotConfigured
	}
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return auth.Account{}, ErrUnauthorized
	}

	var out accountResponse
	err := a.http.DoJSON(ctx, http.MethodPost, path, nil, nil, credentialsRequest{
		Email:       strings.TrimSpace(creds.Email),
		Password:    creds.Password,
		DisplayName: strings.TrimSpace(creds.DisplayName),
	}, &out)
	if err != nil {
		var apiErr *httpclient.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return auth.Account{}, ErrUnauthorized
			}
			// el mensaje del servidor se muestra tal cual (p.ej. "email already registered")
			return auth.Account{}, err
		}
		return auth.Account{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" || out.Token == "" {
		return auth.Account{}, errors.New("auth response missing user_id or token")
	}

	return auth.Account{
		UserID:      out.UserID,
		Email:       strings.TrimSpace(out.Email),
		DisplayName: strings.TrimSpace(out.DisplayName),
		APIToken:    out.Token,
	}, nil
}

func (a *Authenticator) Logout(ctx context.Context, apiToken string) error {
	if !a.IsConfigured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(apiToken) == "" {
		return nil
	}

	headers := map[string]string{"Authorization": "Bearer " + apiToken}
	err := a.http.DoJSON(ctx, http.MethodPost, "/auth/logout", nil, headers, nil, nil)
	if err != nil {
		// el token del backend puede haber vencido antes que la sesión local;
		// para la UI el logout igual se completa
		var apiErr *httpclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}
