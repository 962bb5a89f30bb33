package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SessionRepository хранит сессии в PostgreSQL
type SessionRepository struct {
	db DBTX
}

// NewSessionRepository создает новый SessionRepository
func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// SaveSession создает сессию или обновляет существующую
func (r *SessionRepository) SaveSession(ctx context.Context, session *domain.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, login, access_token, state, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE
		 SET access_token = EXCLUDED.access_token,
		     state = EXCLUDED.state,
		     expires_at = EXCLUDED.expires_at`,
		session.ID, session.Login, session.AccessToken, string(session.State), session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to save session %s: %w", session.ID, err)
	}

	return nil
}

// GetSession получает сессию по id
func (r *SessionRepository) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session := &domain.Session{}
	var state string

	err := r.db.QueryRow(ctx,
		`SELECT id, login, access_token, state, created_at, expires_at
		 FROM sessions
		 WHERE id = $1`,
		id,
	).Scan(&session.ID, &session.Login, &session.AccessToken, &state, &session.CreatedAt, &session.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get session %s: %w", id, err)
	}

	session.State = domain.SessionState(state)
	return session, nil
}

// DeleteSession удаляет сессию
func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrSessionNotFound
		}
		return fmt.Errorf("repository: failed to delete session %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions удаляет сессии, истекшие к моменту now
func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete expired sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}
