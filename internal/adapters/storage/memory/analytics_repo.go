package memory

import (
	"context"

	"microdose-web/internal/domain/analytics"
)

type analyticsRepo struct{}

// NewAnalyticsRepo es el repo de dev sin backend: no hay series que agregar,
// devuelve stats vacías (la UI muestra sus empty states).
func NewAnalyticsRepo() analytics.Repository {
	return analyticsRepo{}
}

func (analyticsRepo) Journal(ctx context.Context, days int) (analytics.JournalStats, error) {
	return analytics.JournalStats{Days: days}, nil
}

func (analyticsRepo) Adherence(ctx context.Context, days int) (analytics.AdherenceStats, error) {
	return analytics.AdherenceStats{Days: days}, nil
}
