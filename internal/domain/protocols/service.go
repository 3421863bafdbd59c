package protocols

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"microdose-web/internal/platform/logger"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("protocol not found")
	ErrHasCompletedEvents = errors.New("protocol has completed events")
)

// eventFetchConcurrency limita el fan-out al backend al armar el calendario.
const eventFetchConcurrency = 4

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context) ([]Protocol, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Protocol, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Protocol{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Protocol, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Protocol{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Protocol{}, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.StartDate); err != nil {
		return Protocol{}, ErrInvalidInput
	}
	if in.CycleLength < 1 {
		return Protocol{}, ErrInvalidInput
	}
	in.Substance = strings.TrimSpace(in.Substance)
	in.DoseUnit = strings.TrimSpace(in.DoseUnit)

	return s.repo.Create(ctx, in)
}

// Delete borra el protocolo solo si no tiene eventos completados.
// El backend valida lo mismo, pero chequear acá da un mensaje claro sin
// depender del texto del servidor.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	evs, err := s.repo.ListEvents(ctx, id)
	if err != nil {
		// el guard queda degradado; se deja constancia y decide el backend
		s.log.Warn("delete guard skipped, event fetch failed", map[string]any{
			"protocol_id": id,
			"err":         err.Error(),
		})
	}
	for _, e := range evs {
		if e.Status == EventCompleted {
			return ErrHasCompletedEvents
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) ListEvents(ctx context.Context, protocolID string) ([]Event, error) {
	protocolID = strings.TrimSpace(protocolID)
	if protocolID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListEvents(ctx, protocolID)
}

// EventsForAll junta los eventos de todos los protocolos en paralelo.
// Si la consulta de un protocolo falla, ese protocolo aporta lista vacía;
// nunca se aborta el join completo.
func (s *Service) EventsForAll(ctx context.Context, ps []Protocol) []Event {
	if len(ps) == 0 {
		return nil
	}

	results := make([][]Event, len(ps))

	g := &errgroup.Group{}
	g.SetLimit(eventFetchConcurrency)

	for i, p := range ps {
		g.Go(func() error {
			evs, err := s.repo.ListEvents(ctx, p.ID)
			if err != nil {
				s.log.Warn("event fetch degraded to empty", map[string]any{
					"protocol_id": p.ID,
					"err":         err.Error(),
				})
				return nil
			}
			results[i] = evs
			return nil
		})
	}
	_ = g.Wait()

	var out []Event
	for _, evs := range results {
		out = append(out, evs...)
	}
	return out
}

// EventsOn filtra eventos por día calendario local.
func EventsOn(evs []Event, day time.Time) []Event {
	y, m, d := day.Date()
	out := make([]Event, 0)
	for _, e := range evs {
		ey, em, ed := e.Date.Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}
