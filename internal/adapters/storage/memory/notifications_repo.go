package memory

import (
	"context"
	"sort"
	"sync"

	"microdose-web/internal/domain/notifications"
)

type notificationsRepo struct {
	mu   sync.RWMutex
	byID map[string]notifications.Notification
}

// NewNotificationsRepo es el repo de dev sin backend. Arranca vacío: sin
// scheduler propio, acá no se generan avisos.
func NewNotificationsRepo() notifications.Repository {
	return &notificationsRepo{byID: make(map[string]notifications.Notification)}
}

func (r *notificationsRepo) List(ctx context.Context, limit int) ([]notifications.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notifications.Notification, 0, len(r.byID))
	for _, n := range r.byID {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.After(out[j].ScheduledAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *notificationsRepo) MarkSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	n.Status = notifications.StatusSent
	r.byID[id] = n
	return nil
}

func (r *notificationsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
