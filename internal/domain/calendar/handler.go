package calendar

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/platform/logger"
	"microdose-web/internal/view"
)

// RegisterRoutes monta la página del calendario (detrás de RequireAuth).
func RegisterRoutes(r chi.Router, rnd *view.Renderer, protocolsSvc *protocols.Service, log logger.Logger) {
	r.Get("/dashboard/calendar", pageHandler(rnd, protocolsSvc, log))
}

// RegisterAPIRoutes monta el endpoint JSON que consume el widget.
func RegisterAPIRoutes(r chi.Router, protocolsSvc *protocols.Service, log logger.Logger) {
	r.Get("/calendar/items", itemsAPIHandler(protocolsSvc, log))
}

type pageContent struct {
	Items []Item
	Today string
}

func pageHandler(rnd *view.Renderer, protocolsSvc *protocols.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := loadItems(r, protocolsSvc, log)

		d := view.Page(w, r, "Calendar")
		d.Content = pageContent{
			Items: items,
			Today: DayKey(time.Now()),
		}
		rnd.Render(w, http.StatusOK, "calendar", d)
	}
}

// itemsAPIHandler godoc
// @Summary Entradas de calendario proyectadas
// @Description Proyecta los protocolos activos/pausados y todos sus eventos a las entradas que dibuja el widget de calendario. Se recalcula en cada request; no hay estado derivado persistido.
// @Tags calendar
// @Produce json
// @Success 200 {array} Item
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/items [get]
func itemsAPIHandler(protocolsSvc *protocols.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := loadItems(r, protocolsSvc, log)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(items)
	}
}

// loadItems trae protocolos y eventos y proyecta. Si la lista de protocolos
// falla, el calendario rinde vacío; si falla la consulta de eventos de un
// protocolo puntual, ese protocolo aporta lista vacía (ver EventsForAll).
func loadItems(r *http.Request, protocolsSvc *protocols.Service, log logger.Logger) []Item {
	ps, err := protocolsSvc.List(r.Context())
	if err != nil {
		return nil
	}
	evs := protocolsSvc.EventsForAll(r.Context(), ps)
	return Project(ps, evs, log)
}
