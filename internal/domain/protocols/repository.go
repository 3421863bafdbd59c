package protocols

import "context"

// Repository es el port hacia el backend remoto. La implementación real vive
// en adapters/backend/rest; adapters/backend/cached la decora con un cache
// corto de queries.
type Repository interface {
	List(ctx context.Context) ([]Protocol, error)
	GetByID(ctx context.Context, id string) (Protocol, error)
	Create(ctx context.Context, in CreateInput) (Protocol, error)
	Delete(ctx context.Context, id string) error

	ListEvents(ctx context.Context, protocolID string) ([]Event, error)
}

// CreateInput viaja tal cual al backend; la generación de eventos es suya.
type CreateInput struct {
	Name        string
	Type        Type
	StartDate   string // YYYY-MM-DD
	CycleLength int

	Substance string
	Dose      float64
	DoseUnit  string

	NotifyEnabled bool
}
