package session

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/adapters/auth/remote"
	"microdose-web/internal/middleware"
	"microdose-web/internal/platform/httpclient"
	"microdose-web/internal/ports/auth"
	"microdose-web/internal/view"
)

// RegisterPublicRoutes monta login/signup; el router las envuelve con el
// guard PublicOnly (usuario autenticado => redirect a /dashboard).
func RegisterPublicRoutes(r chi.Router, rnd *view.Renderer, svc *Service, authn auth.Authenticator) {
	r.Get("/login", loginFormHandler(rnd))
	r.Post("/login", loginHandler(rnd, svc, authn))
	r.Get("/signup", signupFormHandler(rnd))
	r.Post("/signup", signupHandler(rnd, svc, authn))
}

// RegisterPrivateRoutes monta el logout, detrás de RequireAuth.
func RegisterPrivateRoutes(r chi.Router, svc *Service, authn auth.Authenticator) {
	r.Post("/logout", logoutHandler(svc, authn))
}

type loginContent struct {
	Next string
}

func loginFormHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := view.Page(w, r, "Log in")
		// el destino original viaja del guard al form y de ahí al POST
		d.Content = loginContent{Next: middleware.SafeNext(r.URL.Query().Get("next"))}
		rnd.Render(w, http.StatusOK, "login", d)
	}
}

func signupFormHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "signup", view.Page(w, r, "Sign up"))
	}
}

func loginHandler(rnd *view.Renderer, svc *Service, authn auth.Authenticator) http.HandlerFunc {
	return authenticateHandler(rnd, svc, authn, false)
}

func signupHandler(rnd *view.Renderer, svc *Service, authn auth.Authenticator) http.HandlerFunc {
	return authenticateHandler(rnd, svc, authn, true)
}

func authenticateHandler(rnd *view.Renderer, svc *Service, authn auth.Authenticator, signup bool) http.HandlerFunc {
	page := "login"
	title := "Log in"
	if signup {
		page = "signup"
		title = "Sign up"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		creds := auth.Credentials{
			Email:       r.PostFormValue("email"),
			Password:    r.PostFormValue("password"),
			DisplayName: r.PostFormValue("display_name"),
		}

		acct, err := resolveAccount(r, authn, creds, signup)
		if err != nil {
			status := http.StatusBadGateway
			msg := "Could not reach the server. Try again in a moment."
			if errors.Is(err, remote.ErrUnauthorized) {
				status = http.StatusUnauthorized
				msg = "Invalid email or password."
			} else {
				// el backend manda mensajes pensados para el usuario
				// (p.ej. "email already registered"); se muestran tal cual
				msg = httpclient.ErrorMessage(err, msg)
				var apiErr *httpclient.APIError
				if errors.As(err, &apiErr) {
					status = http.StatusBadRequest
				}
			}

			view.SetFlash(w, "error", msg)
			d := view.Page(w, r, title)
			d.Flash = &view.Flash{Kind: "error", Text: msg}
			if !signup {
				d.Content = loginContent{Next: middleware.SafeNext(r.FormValue("next"))}
			}
			rnd.Render(w, status, page, d)
			return
		}

		sess, err := svc.Start(r.Context(), acct)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, sess.ID)
		http.Redirect(w, r, middleware.SafeNext(r.FormValue("next")), http.StatusFound)
	}
}

// resolveAccount llama al backend; sin Authenticator (modo dev) acepta
// cualquier credencial con email no vacío.
func resolveAccount(r *http.Request, authn auth.Authenticator, creds auth.Credentials, signup bool) (auth.Account, error) {
	if authn == nil {
		email := strings.TrimSpace(creds.Email)
		if email == "" || creds.Password == "" {
			return auth.Account{}, remote.ErrUnauthorized
		}
		return auth.Account{
			UserID:      "dev-" + email,
			Email:       email,
			DisplayName: strings.TrimSpace(creds.DisplayName),
			APIToken:    "dev-token-" + email,
		}, nil
	}

	if signup {
		return authn.Signup(r.Context(), creds)
	}
	return authn.Login(r.Context(), creds)
}

func logoutHandler(svc *Service, authn auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(middleware.SessionCookie); err == nil && c.Value != "" {
			if sess, err := svc.Resolve(r.Context(), c.Value); err == nil && authn != nil {
				// cortesía: invalidar también el token del backend
				_ = authn.Logout(r.Context(), sess.APIToken)
			}
			_ = svc.End(r.Context(), c.Value)
		}

		middleware.ClearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
