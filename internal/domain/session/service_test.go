package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"microdose-web/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Session
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Session{}}
}

func (r *testRepo) Create(ctx context.Context, s Session) error {
	if s.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[s.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteExpired(ctx context.Context) error { return nil }

// -------------------------
// Tests
// -------------------------

func TestService_Start_And_Resolve(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, time.Hour)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sess, err := svc.Start(context.Background(), auth.Account{
		UserID:   "user-1",
		Email:    "ana@example.com",
		APIToken: "tok-1",
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if sess.ID == "" {
		t.Fatalf("expected session id")
	}
	if sess.ExpiresAt != now.Add(time.Hour) {
		t.Fatalf("expected ttl 1h, got %v", sess.ExpiresAt)
	}

	got, err := svc.Resolve(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.UserID != "user-1" || got.APIToken != "tok-1" {
		t.Fatalf("resolved wrong session: %#v", got)
	}
}

func TestService_Start_RequiresUserID(t *testing.T) {
	svc := NewService(newTestRepo(), time.Hour)

	_, err := svc.Start(context.Background(), auth.Account{Email: "x@example.com"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Resolve_ExpiredSessionIsGone(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, time.Hour)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	sess, err := svc.Start(context.Background(), auth.Account{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}

	// avanzar el reloj más allá del TTL
	svc.now = func() time.Time { return start.Add(2 * time.Hour) }

	if _, err := svc.Resolve(context.Background(), sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired session, got %v", err)
	}

	// la sesión vencida se borra del repo
	if _, ok := repo.byID[sess.ID]; ok {
		t.Fatalf("expected expired session to be deleted")
	}
}

func TestService_End_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, time.Hour)

	sess, err := svc.Start(context.Background(), auth.Account{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}

	if err := svc.End(context.Background(), sess.ID); err != nil {
		t.Fatalf("End error: %v", err)
	}
	if err := svc.End(context.Background(), sess.ID); err != nil {
		t.Fatalf("End #2 (idempotent) error: %v", err)
	}
	if err := svc.End(context.Background(), ""); err != nil {
		t.Fatalf("End with empty id error: %v", err)
	}
}
