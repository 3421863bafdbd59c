package analytics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/view"
)

func RegisterRoutes(r chi.Router, rnd *view.Renderer, svc *Service) {
	r.Get("/dashboard/analytics", pageHandler(rnd, svc))
}

type pageContent struct {
	Windows []int
	Days    int

	Journal    JournalStats
	HasJournal bool

	Adherence    AdherenceStats
	HasAdherence bool
}

func pageHandler(rnd *view.Renderer, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		days = ClampWindow(days)

		content := pageContent{Windows: Windows, Days: days}

		// cada sección aísla su propio fallo: sin journal igual se muestra
		// adherence, y viceversa
		if js, err := svc.Journal(r.Context(), days); err == nil {
			content.Journal = js
			content.HasJournal = js.Entries > 0 || len(js.Daily) > 0
		}
		if as, err := svc.Adherence(r.Context(), days); err == nil {
			content.Adherence = as
			content.HasAdherence = as.Scheduled > 0
		}
		if !content.HasAdherence {
			content.Adherence.Days = days
		}

		d := view.Page(w, r, "Analytics")
		d.Content = content
		rnd.Render(w, http.StatusOK, "analytics", d)
	}
}
