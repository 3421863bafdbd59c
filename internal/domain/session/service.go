package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"microdose-web/internal/ports/auth"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("session not found")
)

type Service struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
}

func NewService(repo Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Start abre una sesión para la cuenta autenticada y devuelve el ID que va
// en la cookie.
func (s *Service) Start(ctx context.Context, acct auth.Account) (Session, error) {
	if strings.TrimSpace(acct.UserID) == "" {
		return Session{}, ErrInvalidInput
	}

	now := s.now()
	sess := Session{
		ID:          uuid.NewString(),
		UserID:      acct.UserID,
		Email:       strings.TrimSpace(acct.Email),
		DisplayName: strings.TrimSpace(acct.DisplayName),
		APIToken:    acct.APIToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}

	// limpieza oportunista; si falla no afecta el login
	_ = s.repo.DeleteExpired(ctx)

	return sess, nil
}

// Resolve valida el ID de la cookie. Una sesión vencida se borra y cuenta
// como inexistente.
func (s *Service) Resolve(ctx context.Context, id string) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrNotFound
	}

	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Session{}, ErrNotFound
	}

	if sess.Expired(s.now()) {
		_ = s.repo.Delete(ctx, sess.ID)
		return Session{}, ErrNotFound
	}

	return sess, nil
}

// End cierra la sesión. Es idempotente: cerrar una sesión inexistente no es error.
func (s *Service) End(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return s.repo.Delete(ctx, id)
}
