package analytics

import "context"

type Repository interface {
	Journal(ctx context.Context, days int) (JournalStats, error)
	Adherence(ctx context.Context, days int) (AdherenceStats, error)
}
