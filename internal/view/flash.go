package view

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "md_flash"

// Flash es el aviso descartable que sobrevive a un redirect (patrón
// POST-redirect-GET): la mutación setea la cookie, el GET siguiente la
// consume y la muestra.
type Flash struct {
	Kind string // "ok" | "error"
	Text string
}

func SetFlash(w http.ResponseWriter, kind, text string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + text),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash lee y borra el flash pendiente, si hay.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	kind, text, ok := strings.Cut(raw, "|")
	if !ok || text == "" {
		return nil
	}
	return &Flash{Kind: kind, Text: text}
}
