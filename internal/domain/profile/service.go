package profile

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetDosingProfile(ctx context.Context) (DosingProfile, error) {
	return s.repo.GetDosingProfile(ctx)
}

// SaveDosingProfile persiste lo que entrega el callback del calculador.
// Validación mínima: el cálculo en sí es del componente externo.
func (s *Service) SaveDosingProfile(ctx context.Context, p DosingProfile) error {
	p.Substance = strings.TrimSpace(p.Substance)
	p.DoseUnit = strings.TrimSpace(p.DoseUnit)
	if p.Substance == "" || p.DoseUnit == "" {
		return ErrInvalidInput
	}
	if p.Dose <= 0 {
		return ErrInvalidInput
	}
	return s.repo.SaveDosingProfile(ctx, p)
}

func (s *Service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.repo.ListActivities(ctx)
}
