package session

import "time"

// Session es el único estado propio de esta UI: quién está logueado y con
// qué token habla con el backend. Los datos de dominio nunca se persisten acá.
type Session struct {
	ID string

	UserID      string
	Email       string
	DisplayName string

	// Bearer token emitido por el backend en login/signup.
	APIToken string

	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
