package protocols

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/platform/httpclient"
	"microdose-web/internal/view"
)

// RegisterRoutes monta las páginas de protocolos (detrás de RequireAuth).
func RegisterRoutes(r chi.Router, rnd *view.Renderer, svc *Service) {
	r.Get("/dashboard/protocols", listPageHandler(rnd, svc))
	r.Get("/protocols/create", createFormHandler(rnd))
	r.Post("/protocols/create", createHandler(rnd, svc))
	r.Get("/protocols/{protocolID}", detailPageHandler(rnd, svc))
	r.Post("/protocols/{protocolID}/delete", deleteHandler(svc))
}

// RegisterAPIRoutes monta la superficie JSON (consumida por widgets y
// documentada en /swagger).
func RegisterAPIRoutes(r chi.Router, svc *Service) {
	r.Get("/protocols", listAPIHandler(svc))
	r.Get("/protocols/{protocolID}/events", eventsAPIHandler(svc))
}

type listContent struct {
	Protocols []Protocol
}

type detailContent struct {
	Protocol  Protocol
	Events    []Event
	CanDelete bool
}

type notFoundContent struct {
	Message   string
	BackHref  string
	BackLabel string
}

func listPageHandler(rnd *view.Renderer, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := svc.List(r.Context())
		if err != nil {
			// fetch fallido => lista vacía, la página igual se muestra
			ps = nil
		}

		d := view.Page(w, r, "Protocols")
		d.Content = listContent{Protocols: ps}
		rnd.Render(w, http.StatusOK, "protocols", d)
	}
}

func createFormHandler(rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "protocol_new", view.Page(w, r, "New protocol"))
	}
}

func createHandler(rnd *view.Renderer, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		cycle, _ := strconv.Atoi(r.PostFormValue("cycle_length"))
		dose, _ := strconv.ParseFloat(r.PostFormValue("dose"), 64)

		p, err := svc.Create(r.Context(), CreateInput{
			Name:          r.PostFormValue("name"),
			Type:          Type(r.PostFormValue("type")),
			StartDate:     r.PostFormValue("start_date"),
			CycleLength:   cycle,
			Substance:     r.PostFormValue("substance"),
			Dose:          dose,
			DoseUnit:      r.PostFormValue("dose_unit"),
			NotifyEnabled: r.PostFormValue("notify") == "1",
		})
		if err != nil {
			msg := "Could not create the protocol."
			if errors.Is(err, ErrInvalidInput) {
				msg = "Check the form: name, template, start date and cycle length are required."
			} else {
				msg = httpclient.ErrorMessage(err, msg)
			}

			d := view.Page(w, r, "New protocol")
			d.Flash = &view.Flash{Kind: "error", Text: msg}
			rnd.Render(w, http.StatusBadRequest, "protocol_new", d)
			return
		}

		view.SetFlash(w, "ok", "Protocol created.")
		http.Redirect(w, r, "/protocols/"+p.ID, http.StatusFound)
	}
}

func detailPageHandler(rnd *view.Renderer, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "protocolID")

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			// pantalla de not-found explícita, nunca un crash del error boundary
			d := view.Page(w, r, "Not found")
			d.Content = notFoundContent{
				Message:   "That protocol does not exist or was deleted.",
				BackHref:  "/dashboard/protocols",
				BackLabel: "Back to protocols",
			}
			rnd.Render(w, http.StatusNotFound, "not_found", d)
			return
		}

		evs, err := svc.ListEvents(r.Context(), p.ID)
		if err != nil {
			evs = nil
		}

		canDelete := true
		for _, e := range evs {
			if e.Status == EventCompleted {
				canDelete = false
				break
			}
		}

		d := view.Page(w, r, p.Name)
		d.Content = detailContent{Protocol: p, Events: evs, CanDelete: canDelete}
		rnd.Render(w, http.StatusOK, "protocol_detail", d)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "protocolID")

		err := svc.Delete(r.Context(), id)
		switch {
		case err == nil:
			view.SetFlash(w, "ok", "Protocol deleted.")
			http.Redirect(w, r, "/dashboard/protocols", http.StatusFound)
		case errors.Is(err, ErrHasCompletedEvents):
			view.SetFlash(w, "error", "Protocols with completed events cannot be deleted.")
			http.Redirect(w, r, "/protocols/"+id, http.StatusFound)
		case errors.Is(err, ErrNotFound):
			view.SetFlash(w, "error", "That protocol no longer exists.")
			http.Redirect(w, r, "/dashboard/protocols", http.StatusFound)
		default:
			view.SetFlash(w, "error", httpclient.ErrorMessage(err, "Could not delete the protocol."))
			http.Redirect(w, r, "/protocols/"+id, http.StatusFound)
		}
	}
}

// protocolResponse es el protocolo expuesto por la superficie JSON propia.
type protocolResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          Type      `json:"type" enums:"fadiman,stamets,custom,other"`
	Status        Status    `json:"status" enums:"active,paused,completed"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	CycleLength   int       `json:"cycle_length"`
	NotifyEnabled bool      `json:"notify_enabled"`
}

type eventResponse struct {
	ID         string      `json:"id"`
	ProtocolID string      `json:"protocol_id"`
	Date       time.Time   `json:"date"`
	Type       EventType   `json:"type" enums:"dose,pause"`
	Status     EventStatus `json:"status" enums:"scheduled,completed,missed,skipped"`
	Substance  string      `json:"substance,omitempty"`
	Dose       float64     `json:"dose,omitempty"`
	DoseUnit   string      `json:"dose_unit,omitempty"`
}

// listAPIHandler godoc
// @Summary Listar protocolos del usuario
// @Description Lista los protocolos del usuario autenticado, tal como los devuelve el backend.
// @Tags protocols
// @Produce json
// @Success 200 {array} protocolResponse
// @Failure 401 {string} string "unauthorized"
// @Router /protocols [get]
func listAPIHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}

		out := make([]protocolResponse, 0, len(ps))
		for _, p := range ps {
			out = append(out, protocolResponse{
				ID:            p.ID,
				Name:          p.Name,
				Type:          p.Type,
				Status:        p.Status,
				StartDate:     p.StartDate,
				EndDate:       p.EndDate,
				CycleLength:   p.CycleLength,
				NotifyEnabled: p.NotifyEnabled,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// eventsAPIHandler godoc
// @Summary Listar eventos de un protocolo
// @Tags protocols
// @Produce json
// @Param protocolID path string true "ID del protocolo"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "protocol not found"
// @Router /protocols/{protocolID}/events [get]
func eventsAPIHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evs, err := svc.ListEvents(r.Context(), chi.URLParam(r, "protocolID"))
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "protocol not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}

		out := make([]eventResponse, 0, len(evs))
		for _, e := range evs {
			out = append(out, eventResponse{
				ID:         e.ID,
				ProtocolID: e.ProtocolID,
				Date:       e.Date,
				Type:       e.Type,
				Status:     e.Status,
				Substance:  e.Substance,
				Dose:       e.Dose,
				DoseUnit:   e.DoseUnit,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON se repite en los handlers de cada módulo a propósito: todavía no
// amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
