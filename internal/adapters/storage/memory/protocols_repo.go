package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"microdose-web/internal/domain/protocols"
)

// horizonte de eventos que genera el repo de dev; el backend real decide el
// suyo propio
const protocolHorizonDays = 30

type protocolsRepo struct {
	mu     sync.RWMutex
	byID   map[string]protocols.Protocol
	events map[string][]protocols.Event
	now    func() time.Time
}

// NewProtocolsRepo es el repo de dev sin backend: guarda en memoria y genera
// los eventos del ciclo al crear, igual que haría el backend.
func NewProtocolsRepo() protocols.Repository {
	return &protocolsRepo{
		byID:   make(map[string]protocols.Protocol),
		events: make(map[string][]protocols.Event),
		now:    time.Now,
	}
}

func (r *protocolsRepo) List(ctx context.Context) ([]protocols.Protocol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]protocols.Protocol, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *protocolsRepo) GetByID(ctx context.Context, id string) (protocols.Protocol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return protocols.Protocol{}, protocols.ErrNotFound
	}
	return p, nil
}

func (r *protocolsRepo) Create(ctx context.Context, in protocols.CreateInput) (protocols.Protocol, error) {
	start, err := time.ParseInLocation("2006-01-02", in.StartDate, time.Local)
	if err != nil {
		return protocols.Protocol{}, protocols.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := protocols.Protocol{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Type:          in.Type,
		Status:        protocols.StatusActive,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, protocolHorizonDays),
		CycleLength:   in.CycleLength,
		NotifyEnabled: in.NotifyEnabled,
		CreatedAt:     r.now(),
	}
	r.byID[p.ID] = p
	r.events[p.ID] = generateEvents(p, in)
	return p, nil
}

func (r *protocolsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return protocols.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.events, id)
	return nil
}

func (r *protocolsRepo) ListEvents(ctx context.Context, protocolID string) ([]protocols.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byID[protocolID]; !ok {
		return nil, protocols.ErrNotFound
	}
	return append([]protocols.Event(nil), r.events[protocolID]...), nil
}

// generateEvents reproduce el calendario de cada esquema conocido: fadiman
// dosifica el día 1 de cada ciclo, stamets 4 días seguidos y descansa 3, y
// custom/other dosifican el primer día de cada ciclo de CycleLength días.
func generateEvents(p protocols.Protocol, in protocols.CreateInput) []protocols.Event {
	cycle := p.CycleLength
	if cycle <= 0 {
		cycle = 3
	}

	evs := make([]protocols.Event, 0, protocolHorizonDays)
	for day := 0; day < protocolHorizonDays; day++ {
		var isDose bool
		switch p.Type {
		case protocols.TypeStamets:
			isDose = day%7 < 4
		default:
			isDose = day%cycle == 0
		}

		e := protocols.Event{
			ID:         uuid.NewString(),
			ProtocolID: p.ID,
			Date:       p.StartDate.AddDate(0, 0, day),
			Status:     protocols.EventScheduled,
		}
		if isDose {
			e.Type = protocols.EventDose
			e.Substance = in.Substance
			e.Dose = in.Dose
			e.DoseUnit = in.DoseUnit
		} else {
			e.Type = protocols.EventPause
		}
		evs = append(evs, e)
	}
	return evs
}
