package analytics

import "context"

// Ventanas que ofrece la UI. Cualquier otro valor cae en DefaultWindow.
var Windows = []int{7, 30, 90}

const DefaultWindow = 30

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ClampWindow normaliza el parámetro days del query string.
func ClampWindow(days int) int {
	for _, w := range Windows {
		if days == w {
			return days
		}
	}
	return DefaultWindow
}

func (s *Service) Journal(ctx context.Context, days int) (JournalStats, error) {
	return s.repo.Journal(ctx, ClampWindow(days))
}

func (s *Service) Adherence(ctx context.Context, days int) (AdherenceStats, error) {
	return s.repo.Adherence(ctx, ClampWindow(days))
}
