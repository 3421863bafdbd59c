package notifications

import "context"

type Repository interface {
	// List trae hasta limit notificaciones del usuario, más recientes primero.
	List(ctx context.Context, limit int) ([]Notification, error)
	MarkSent(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
