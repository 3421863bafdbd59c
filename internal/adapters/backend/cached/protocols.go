// Package cached decora el port de protocolos con un cache de queries de
// vida corta: evita re-pedir la misma lista al backend en cada render.
// Toda mutación invalida el namespace del usuario y el próximo read refetchea.
package cached

import (
	"context"
	"strings"
	"sync"
	"time"

	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/ports/auth"
)

const DefaultTTL = 30 * time.Second

type entry struct {
	protocols []protocols.Protocol
	events    []protocols.Event
	single    protocols.Protocol
	savedAt   time.Time
}

type ProtocolsCache struct {
	next protocols.Repository
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

func NewProtocolsCache(next protocols.Repository, ttl time.Duration) *ProtocolsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProtocolsCache{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// key separa el cache por usuario (token) y por query. Una respuesta tardía
// de otro usuario u otra query nunca pisa la entrada equivocada.
func key(ctx context.Context, parts ...string) string {
	return auth.APITokenFromContext(ctx) + "|" + strings.Join(parts, "|")
}

func (c *ProtocolsCache) get(k string) (entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		return entry{}, false
	}
	if c.now().Sub(e.savedAt) > c.ttl {
		delete(c.entries, k)
		return entry{}, false
	}
	return e, true
}

func (c *ProtocolsCache) put(k string, e entry) {
	e.savedAt = c.now()
	c.mu.Lock()
	c.entries[k] = e
	c.mu.Unlock()
}

// invalidateUser tira todas las entradas del usuario; lo llaman Create y
// Delete (una mutación invalida y el siguiente read refetchea).
func (c *ProtocolsCache) invalidateUser(ctx context.Context) {
	prefix := auth.APITokenFromContext(ctx) + "|"

	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

func (c *ProtocolsCache) List(ctx context.Context) ([]protocols.Protocol, error) {
	k := key(ctx, "list")
	if e, ok := c.get(k); ok {
		return e.protocols, nil
	}

	ps, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.put(k, entry{protocols: ps})
	return ps, nil
}

func (c *ProtocolsCache) GetByID(ctx context.Context, id string) (protocols.Protocol, error) {
	k := key(ctx, "get", id)
	if e, ok := c.get(k); ok {
		return e.single, nil
	}

	p, err := c.next.GetByID(ctx, id)
	if err != nil {
		return protocols.Protocol{}, err
	}
	c.put(k, entry{single: p})
	return p, nil
}

func (c *ProtocolsCache) Create(ctx context.Context, in protocols.CreateInput) (protocols.Protocol, error) {
	p, err := c.next.Create(ctx, in)
	if err != nil {
		return protocols.Protocol{}, err
	}
	c.invalidateUser(ctx)
	return p, nil
}

func (c *ProtocolsCache) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidateUser(ctx)
	return nil
}

func (c *ProtocolsCache) ListEvents(ctx context.Context, protocolID string) ([]protocols.Event, error) {
	k := key(ctx, "events", protocolID)
	if e, ok := c.get(k); ok {
		return e.events, nil
	}

	evs, err := c.next.ListEvents(ctx, protocolID)
	if err != nil {
		return nil, err
	}
	c.put(k, entry{events: evs})
	return evs, nil
}
