package cached

import (
	"context"
	"testing"
	"time"

	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/ports/auth"
)

type countingRepo struct {
	lists, gets, events int
	ps                  []protocols.Protocol
}

func (r *countingRepo) List(ctx context.Context) ([]protocols.Protocol, error) {
	r.lists++
	return r.ps, nil
}

func (r *countingRepo) GetByID(ctx context.Context, id string) (protocols.Protocol, error) {
	r.gets++
	return protocols.Protocol{ID: id}, nil
}

func (r *countingRepo) Create(ctx context.Context, in protocols.CreateInput) (protocols.Protocol, error) {
	return protocols.Protocol{ID: "new"}, nil
}

func (r *countingRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *countingRepo) ListEvents(ctx context.Context, protocolID string) ([]protocols.Event, error) {
	r.events++
	return []protocols.Event{{ID: "e1", ProtocolID: protocolID}}, nil
}

func userCtx(token string) context.Context {
	return auth.WithAPIToken(context.Background(), token)
}

func TestCache_ListHitsBackendOnce(t *testing.T) {
	repo := &countingRepo{ps: []protocols.Protocol{{ID: "p1"}}}
	c := NewProtocolsCache(repo, time.Minute)

	ctx := userCtx("tok-1")
	for i := 0; i < 3; i++ {
		ps, err := c.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(ps) != 1 || ps[0].ID != "p1" {
			t.Fatalf("unexpected list: %#v", ps)
		}
	}

	if repo.lists != 1 {
		t.Fatalf("expected 1 backend call, got %d", repo.lists)
	}
}

func TestCache_EntriesExpireAfterTTL(t *testing.T) {
	repo := &countingRepo{}
	c := NewProtocolsCache(repo, 30*time.Second)

	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return start }

	ctx := userCtx("tok-1")
	_, _ = c.List(ctx)
	_, _ = c.List(ctx)
	if repo.lists != 1 {
		t.Fatalf("expected cached read, got %d calls", repo.lists)
	}

	c.now = func() time.Time { return start.Add(31 * time.Second) }
	_, _ = c.List(ctx)
	if repo.lists != 2 {
		t.Fatalf("expected refetch after ttl, got %d calls", repo.lists)
	}
}

func TestCache_MutationInvalidatesUserNamespace(t *testing.T) {
	repo := &countingRepo{}
	c := NewProtocolsCache(repo, time.Minute)

	ctx := userCtx("tok-1")
	_, _ = c.List(ctx)
	_, _ = c.ListEvents(ctx, "p1")

	if _, err := c.Create(ctx, protocols.CreateInput{}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, _ = c.List(ctx)
	_, _ = c.ListEvents(ctx, "p1")

	if repo.lists != 2 || repo.events != 2 {
		t.Fatalf("expected refetch after mutation, lists=%d events=%d", repo.lists, repo.events)
	}
}

func TestCache_UsersDoNotShareEntries(t *testing.T) {
	repo := &countingRepo{}
	c := NewProtocolsCache(repo, time.Minute)

	_, _ = c.List(userCtx("tok-1"))
	_, _ = c.List(userCtx("tok-2"))

	if repo.lists != 2 {
		t.Fatalf("expected separate cache entries per user, got %d calls", repo.lists)
	}

	// la mutación de un usuario no invalida al otro
	_ = c.Delete(userCtx("tok-1"), "p1")
	_, _ = c.List(userCtx("tok-2"))
	if repo.lists != 2 {
		t.Fatalf("tok-2 cache should survive tok-1 mutation, got %d calls", repo.lists)
	}
}
