package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"microdose-web/internal/domain/notifications"
)

type NotificationsRepo struct {
	c *Client
}

func NewNotificationsRepo(c *Client) *NotificationsRepo {
	return &NotificationsRepo{c: c}
}

type notificationDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	ScheduledAt string `json:"scheduled_at"`
	Message     string `json:"message"`
}

func (r *NotificationsRepo) List(ctx context.Context, limit int) ([]notifications.Notification, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out []notificationDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, "/notifications", q, authHeaders(ctx), nil, &out)
	if err != nil {
		return nil, err
	}

	ns := make([]notifications.Notification, 0, len(out))
	for _, d := range out {
		n := notifications.Notification{
			ID:      d.ID,
			Type:    notifications.NotificationType(d.Type),
			Status:  notifications.Status(d.Status),
			Message: d.Message,
		}
		if t, ok := parseAPIDate(d.ScheduledAt); ok {
			n.ScheduledAt = t
		}
		ns = append(ns, n)
	}
	return ns, nil
}

func (r *NotificationsRepo) MarkSent(ctx context.Context, id string) error {
	return r.c.http.DoJSON(ctx, http.MethodPost, "/notifications/"+id+"/sent", nil, authHeaders(ctx), nil, nil)
}

func (r *NotificationsRepo) Delete(ctx context.Context, id string) error {
	return r.c.http.DoJSON(ctx, http.MethodDelete, "/notifications/"+id, nil, authHeaders(ctx), nil, nil)
}
