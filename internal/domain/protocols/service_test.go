package protocols

import (
	"context"
	"errors"
	"testing"
	"time"

	"microdose-web/internal/platform/logger"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Protocol
	events  map[string][]Event
	failFor map[string]bool // protocolos cuyo ListEvents falla
	deleted []string
	creates int
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:    map[string]Protocol{},
		events:  map[string][]Event{},
		failFor: map[string]bool{},
	}
}

func (r *testRepo) List(ctx context.Context) ([]Protocol, error) {
	out := make([]Protocol, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Protocol, error) {
	p, ok := r.byID[id]
	if !ok {
		return Protocol{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Create(ctx context.Context, in CreateInput) (Protocol, error) {
	r.creates++
	p := Protocol{ID: "generated", Name: in.Name, Type: in.Type, Status: StatusActive}
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *testRepo) ListEvents(ctx context.Context, protocolID string) ([]Event, error) {
	if r.failFor[protocolID] {
		return nil, errors.New("backend unavailable")
	}
	return r.events[protocolID], nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_ValidatesInput(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	valid := CreateInput{
		Name:        "Fadiman Q1",
		Type:        TypeFadiman,
		StartDate:   "2026-01-05",
		CycleLength: 3,
	}

	if _, err := svc.Create(context.Background(), valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := map[string]CreateInput{
		"empty name": {Type: TypeFadiman, StartDate: "2026-01-05", CycleLength: 3},
		"bad type":   {Name: "x", Type: Type("lunar"), StartDate: "2026-01-05", CycleLength: 3},
		"bad date":   {Name: "x", Type: TypeFadiman, StartDate: "05/01/2026", CycleLength: 3},
		"bad cycle":  {Name: "x", Type: TypeFadiman, StartDate: "2026-01-05", CycleLength: 0},
	}
	for name, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Delete_BlockedByCompletedEvents(t *testing.T) {
	repo := newTestRepo()
	repo.byID["p1"] = Protocol{ID: "p1", Status: StatusActive}
	repo.events["p1"] = []Event{
		{ID: "e1", ProtocolID: "p1", Status: EventScheduled},
		{ID: "e2", ProtocolID: "p1", Status: EventCompleted},
	}

	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), "p1")
	if !errors.Is(err, ErrHasCompletedEvents) {
		t.Fatalf("expected ErrHasCompletedEvents, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("protocol must not be deleted")
	}
}

func TestService_Delete_AllowedWithoutCompletedEvents(t *testing.T) {
	repo := newTestRepo()
	repo.byID["p1"] = Protocol{ID: "p1", Status: StatusActive}
	repo.events["p1"] = []Event{
		{ID: "e1", ProtocolID: "p1", Status: EventScheduled},
		{ID: "e2", ProtocolID: "p1", Status: EventSkipped},
	}

	svc := NewService(repo, nil)

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "p1" {
		t.Fatalf("expected p1 deleted, got %v", repo.deleted)
	}
}

// warnSpy captura los Warn emitidos por el service.
type warnSpy struct {
	logger.Logger
	warns []string
}

func (s *warnSpy) Warn(msg string, _ map[string]any) { s.warns = append(s.warns, msg) }

func TestService_Delete_WarnsWhenEventFetchFails(t *testing.T) {
	repo := newTestRepo()
	repo.byID["p1"] = Protocol{ID: "p1", Status: StatusActive}
	repo.failFor["p1"] = true

	spy := &warnSpy{Logger: logger.Nop()}
	svc := NewService(repo, spy)

	// el guard queda degradado: el borrado sigue (el backend re-valida)
	// pero tiene que quedar registrado
	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected delete to proceed, got %v", repo.deleted)
	}
	if len(spy.warns) == 0 {
		t.Fatal("expected a warn when the delete guard is skipped")
	}
}

func TestService_EventsForAll_DegradesFailedProtocolToEmpty(t *testing.T) {
	repo := newTestRepo()
	repo.events["p1"] = []Event{{ID: "e1", ProtocolID: "p1"}, {ID: "e2", ProtocolID: "p1"}}
	repo.events["p2"] = []Event{{ID: "e3", ProtocolID: "p2"}}
	repo.failFor["p2"] = true

	svc := NewService(repo, nil)

	got := svc.EventsForAll(context.Background(), []Protocol{{ID: "p1"}, {ID: "p2"}})

	if len(got) != 2 {
		t.Fatalf("expected 2 events (p2 degraded to empty), got %d", len(got))
	}
	for _, e := range got {
		if e.ProtocolID == "p2" {
			t.Fatalf("p2 events should have been dropped")
		}
	}
}

func TestEventsOn_MatchesLocalCalendarDay(t *testing.T) {
	evs := []Event{
		{ID: "e1", Date: time.Date(2026, 2, 10, 14, 30, 0, 0, time.Local)},
		{ID: "e2", Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)},
		{ID: "e3", Date: time.Date(2026, 2, 11, 0, 0, 0, 0, time.Local)},
	}

	got := EventsOn(evs, time.Date(2026, 2, 10, 23, 59, 0, 0, time.Local))
	if len(got) != 2 {
		t.Fatalf("expected 2 events on 2026-02-10, got %d", len(got))
	}
}
