package notifications

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"microdose-web/internal/platform/httpclient"
	"microdose-web/internal/view"
)

// RegisterRoutes monta las acciones del centro de notificaciones; el listado
// se renderiza dentro del dashboard. Ambas mutaciones redirigen de vuelta con
// un flash (el mensaje del servidor tal cual, o un fallback genérico).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/notifications/{notificationID}/sent", markSentHandler(svc))
	r.Post("/notifications/{notificationID}/delete", deleteHandler(svc))
}

// RegisterAPIRoutes expone el listado JSON.
func RegisterAPIRoutes(r chi.Router, svc *Service) {
	r.Get("/notifications", listAPIHandler(svc))
}

func markSentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "notificationID")

		if err := svc.MarkSent(r.Context(), id); err != nil {
			view.SetFlash(w, "error", httpclient.ErrorMessage(err, "Could not update the notification."))
		} else {
			view.SetFlash(w, "ok", "Notification marked as sent.")
		}
		http.Redirect(w, r, "/dashboard#notifications", http.StatusFound)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "notificationID")

		if err := svc.Delete(r.Context(), id); err != nil {
			view.SetFlash(w, "error", httpclient.ErrorMessage(err, "Could not delete the notification."))
		} else {
			view.SetFlash(w, "ok", "Notification deleted.")
		}
		http.Redirect(w, r, "/dashboard#notifications", http.StatusFound)
	}
}

type notificationResponse struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type" enums:"reminder,reflection,assessment"`
	Status      Status           `json:"status" enums:"scheduled,sent,delivered,failed"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	Message     string           `json:"message"`
}

// listAPIHandler godoc
// @Summary Listar notificaciones del usuario
// @Tags notifications
// @Produce json
// @Param limit query int false "Máximo a devolver (1-50). Por defecto 10"
// @Success 200 {array} notificationResponse
// @Failure 401 {string} string "unauthorized"
// @Router /notifications [get]
func listAPIHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// valores inválidos caen en el default del service
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		ns, err := svc.List(r.Context(), limit)
		if err != nil {
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}

		out := make([]notificationResponse, 0, len(ns))
		for _, n := range ns {
			out = append(out, notificationResponse{
				ID:          n.ID,
				Type:        n.Type,
				Status:      n.Status,
				ScheduledAt: n.ScheduledAt,
				Message:     n.Message,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
