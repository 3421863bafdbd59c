package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"microdose-web/internal/domain/session"
)

var ErrNotFound = errors.New("not found")

type sessionsRepo struct {
	mu   sync.RWMutex
	byID map[string]session.Session
	now  func() time.Time
}

// NewSessionsRepo es el store de sesiones por defecto (dev y tests).
// Con SESSION_DSN seteado, el router usa el de postgres.
func NewSessionsRepo() session.Repository {
	return &sessionsRepo{
		byID: make(map[string]session.Session),
		now:  time.Now,
	}
}

func (r *sessionsRepo) Create(ctx context.Context, s session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("session already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionsRepo) GetByID(ctx context.Context, id string) (session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return session.Session{}, ErrNotFound
	}
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, s := range r.byID {
		if s.Expired(now) {
			delete(r.byID, id)
		}
	}
	return nil
}
