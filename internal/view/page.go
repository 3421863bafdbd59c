package view

import (
	"net/http"

	"microdose-web/internal/middleware"
)

// Page arma el sobre común leyendo claims y flash del request.
func Page(w http.ResponseWriter, r *http.Request, title string) Data {
	claims, ok := middleware.GetClaims(r.Context())
	return Data{
		Title:  title,
		Authed: ok,
		Email:  claims.Email,
		Flash:  PopFlash(w, r),
	}
}
