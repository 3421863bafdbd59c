package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"microdose-web/internal/domain/session"
)

type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

// Esquema esperado:
//
//	CREATE TABLE ui_sessions (
//	  id           TEXT PRIMARY KEY,
//	  user_id      TEXT NOT NULL,
//	  email        TEXT NOT NULL DEFAULT '',
//	  display_name TEXT NOT NULL DEFAULT '',
//	  api_token    TEXT NOT NULL,
//	  created_at   TIMESTAMPTZ NOT NULL,
//	  expires_at   TIMESTAMPTZ NOT NULL
//	);
func (r *SessionsRepo) Create(ctx context.Context, s session.Session) error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ui_sessions (
			id, user_id, email, display_name, api_token, created_at, expires_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.UserID,
		s.Email,
		s.DisplayName,
		s.APIToken,
		s.CreatedAt,
		s.ExpiresAt,
	)
	return err
}

func (r *SessionsRepo) GetByID(ctx context.Context, id string) (session.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return session.Session{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, email, display_name, api_token, created_at, expires_at
		FROM ui_sessions
		WHERE id = $1
	`, id)

	var s session.Session
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Email,
		&s.DisplayName,
		&s.APIToken,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Session{}, ErrNotFound
	}
	if err != nil {
		return session.Session{}, err
	}
	return s, nil
}

func (r *SessionsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ui_sessions WHERE id = $1`, id)
	return err
}

func (r *SessionsRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ui_sessions WHERE expires_at < $1`, time.Now())
	return err
}
