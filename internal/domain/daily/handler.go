// Package daily arma la vista de un día calendario: los eventos de todos los
// protocolos que caen en esa fecha.
package daily

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/domain/calendar"
	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/view"
)

func RegisterRoutes(r chi.Router, rnd *view.Renderer, protocolsSvc *protocols.Service) {
	r.Get("/daily", todayHandler())
	r.Get("/daily/{date}", pageHandler(rnd, protocolsSvc))
}

type entry struct {
	Event        protocols.Event
	ProtocolID   string
	ProtocolName string
}

type pageContent struct {
	Day     string
	PrevDay string
	NextDay string
	Entries []entry
}

func todayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/daily/"+calendar.DayKey(time.Now()), http.StatusFound)
	}
}

func pageHandler(rnd *view.Renderer, protocolsSvc *protocols.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := time.ParseInLocation("2006-01-02", chi.URLParam(r, "date"), time.Local)
		if err != nil {
			// fecha malformada en la URL: caer en hoy
			http.Redirect(w, r, "/daily/"+calendar.DayKey(time.Now()), http.StatusFound)
			return
		}

		ps, err := protocolsSvc.List(r.Context())
		if err != nil {
			ps = nil
		}
		evs := protocolsSvc.EventsForAll(r.Context(), ps)

		byID := make(map[string]protocols.Protocol, len(ps))
		for _, p := range ps {
			byID[p.ID] = p
		}

		entries := make([]entry, 0)
		for _, e := range protocols.EventsOn(evs, day) {
			en := entry{Event: e}
			if p, ok := byID[e.ProtocolID]; ok {
				en.ProtocolID = p.ID
				en.ProtocolName = p.Name
			} else {
				en.ProtocolID = string(calendar.UnknownProtocolType)
				en.ProtocolName = calendar.UnknownProtocolName
			}
			entries = append(entries, en)
		}

		d := view.Page(w, r, "Daily "+calendar.DayKey(day))
		d.Content = pageContent{
			Day:     calendar.DayKey(day),
			PrevDay: calendar.DayKey(day.AddDate(0, 0, -1)),
			NextDay: calendar.DayKey(day.AddDate(0, 0, 1)),
			Entries: entries,
		}
		rnd.Render(w, http.StatusOK, "daily", d)
	}
}
