package auth

import "context"

// Authenticator habla con el servicio de auth del backend.
// Si es nil en el router, corre el modo dev (header X-Debug-User-ID).
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (Account, error)
	Signup(ctx context.Context, creds Credentials) (Account, error)
	Logout(ctx context.Context, apiToken string) error
}
