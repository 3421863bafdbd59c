// Package pages agrupa las páginas sueltas que no tienen dominio propio:
// landing, estado legal, feedback, comunidad y el calculador de dosis.
package pages

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/domain/profile"
	"microdose-web/internal/view"
)

// RegisterPublicRoutes registra las páginas accesibles sin sesión.
func RegisterPublicRoutes(r chi.Router, rnd *view.Renderer) {
	r.Get("/", staticPage(rnd, "landing", "Microdose tracker"))
	r.Get("/legal-status", staticPage(rnd, "legal", "Legal status"))
	r.Get("/feedback", feedbackPageHandler(rnd))
	r.Post("/feedback", feedbackSubmitHandler())

	for _, t := range communityTabs {
		r.Get(t.Href, communityHandler(rnd, t.Tab))
	}
}

// RegisterPrivateRoutes registra el calculador, que necesita el perfil de
// dosificación de la cuenta.
func RegisterPrivateRoutes(r chi.Router, rnd *view.Renderer, profileSvc *profile.Service) {
	r.Get("/calculator", calculatorPageHandler(rnd, profileSvc))
	r.Post("/calculator/complete", calculatorCompleteHandler(profileSvc))
}

func staticPage(rnd *view.Renderer, page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, page, view.Page(w, r, title))
	}
}

func feedbackPageHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "feedback", view.Page(w, r, "Feedback"))
	}
}

func feedbackSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.FormValue("message")) == "" {
			view.SetFlash(w, "error", "Write something before sending.")
		} else {
			// sin backend de feedback todavía: agradecer y descartar
			view.SetFlash(w, "ok", "Thanks for the feedback!")
		}
		http.Redirect(w, r, "/feedback", http.StatusSeeOther)
	}
}

type communityPage struct {
	Tabs        []TabView
	Placeholder string
}

func communityHandler(rnd *view.Renderer, tab CommunityTab) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tabs, placeholder := communityContent(tab)

		d := view.Page(w, r, "Community")
		d.ActiveTab = string(tab)
		d.Content = communityPage{Tabs: tabs, Placeholder: placeholder}
		rnd.Render(w, http.StatusOK, "community", d)
	}
}

type calculatorPage struct {
	HasProfile bool
	Profile    profile.DosingProfile
	Activities []profile.Activity
}

func calculatorPageHandler(rnd *view.Renderer, profileSvc *profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := calculatorPage{}
		if p, err := profileSvc.GetDosingProfile(r.Context()); err == nil && p.Substance != "" {
			c.HasProfile = true
			c.Profile = p
		}
		if as, err := profileSvc.ListActivities(r.Context()); err == nil {
			c.Activities = as
		}

		d := view.Page(w, r, "Dose calculator")
		d.Content = c
		rnd.Render(w, http.StatusOK, "calculator", d)
	}
}

// calculatorCompleteHandler recibe el callback del widget al terminar el
// cálculo y persiste el resultado como perfil de dosificación.
func calculatorCompleteHandler(profileSvc *profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := profile.DosingProfile{
			Substance:   strings.TrimSpace(r.FormValue("substance")),
			Sensitivity: strings.TrimSpace(r.FormValue("sensitivity")),
			DoseUnit:    strings.TrimSpace(r.FormValue("dose_unit")),
		}
		p.Dose, _ = strconv.ParseFloat(r.FormValue("dose"), 64)
		p.BodyWeight, _ = strconv.ParseFloat(r.FormValue("body_weight"), 64)

		err := profileSvc.SaveDosingProfile(r.Context(), p)
		switch {
		case errors.Is(err, profile.ErrInvalidInput):
			view.SetFlash(w, "error", "Incomplete calculation, nothing was saved.")
		case err != nil:
			view.SetFlash(w, "error", "Could not save your dosing profile.")
		default:
			view.SetFlash(w, "ok", "Dosing profile saved.")
		}
		http.Redirect(w, r, "/calculator", http.StatusSeeOther)
	}
}
