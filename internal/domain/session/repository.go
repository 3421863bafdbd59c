package session

import "context"

type Repository interface {
	Create(ctx context.Context, s Session) error
	GetByID(ctx context.Context, id string) (Session, error)

	// Delete es idempotente: borrar una sesión inexistente no es error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired limpia sesiones vencidas; lo llama el service de forma
	// oportunista, no hace falta un job aparte.
	DeleteExpired(ctx context.Context) error
}
