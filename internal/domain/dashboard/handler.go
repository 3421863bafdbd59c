// Package dashboard compone la pantalla principal: protocolos, eventos de
// hoy, snapshot de adherencia y el centro de notificaciones. Cada sección
// aísla su propio fallo de fetch y cae en su empty state.
package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/domain/analytics"
	"microdose-web/internal/domain/notifications"
	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/view"
)

func RegisterRoutes(
	r chi.Router,
	rnd *view.Renderer,
	protocolsSvc *protocols.Service,
	notificationsSvc *notifications.Service,
	analyticsSvc *analytics.Service,
) {
	r.Get("/dashboard", pageHandler(rnd, protocolsSvc, notificationsSvc, analyticsSvc))
}

type pageContent struct {
	Protocols   []protocols.Protocol
	TodayEvents []protocols.Event

	Notifications []notifications.Notification

	Adherence    analytics.AdherenceStats
	HasAdherence bool
}

func pageHandler(
	rnd *view.Renderer,
	protocolsSvc *protocols.Service,
	notificationsSvc *notifications.Service,
	analyticsSvc *analytics.Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var content pageContent

		if ps, err := protocolsSvc.List(r.Context()); err == nil {
			content.Protocols = ps
			evs := protocolsSvc.EventsForAll(r.Context(), ps)
			content.TodayEvents = protocols.EventsOn(evs, time.Now())
		}

		if ns, err := notificationsSvc.List(r.Context(), notifications.DefaultLimit); err == nil {
			content.Notifications = ns
		}

		if as, err := analyticsSvc.Adherence(r.Context(), analytics.DefaultWindow); err == nil {
			content.Adherence = as
			content.HasAdherence = as.Scheduled > 0
		}
		if !content.HasAdherence {
			content.Adherence.Days = analytics.DefaultWindow
		}

		d := view.Page(w, r, "Dashboard")
		d.Content = content
		rnd.Render(w, http.StatusOK, "dashboard", d)
	}
}
