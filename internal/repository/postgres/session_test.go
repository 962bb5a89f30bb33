package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()

	now := time.Now().UTC()
	session := &domain.Session{
		ID:          "0b6f4c1e-3f0e-4d55-9a4f-1f3b7f6f2a10",
		Login:       "anna",
		AccessToken: "backend-token",
		State:       domain.SessionStateLoggedIn,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO sessions`).
			WithArgs(session.ID, session.Login, session.AccessToken, string(session.State), session.CreatedAt, session.ExpiresAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.SaveSession(ctx, session))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO sessions`).
			WithArgs(session.ID, session.Login, session.AccessToken, string(session.State), session.CreatedAt, session.ExpiresAt).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.SaveSession(ctx, session))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_GetSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()
	id := "0b6f4c1e-3f0e-4d55-9a4f-1f3b7f6f2a10"

	t.Run("Success", func(t *testing.T) {
		created := time.Now().UTC()
		expires := created.Add(time.Hour)
		rows := pgxmock.NewRows([]string{"id", "login", "access_token", "state", "created_at", "expires_at"}).
			AddRow(id, "anna", "backend-token", "LOGGED_IN", created, expires)

		mock.ExpectQuery(`SELECT id, login, access_token, state, created_at, expires_at`).
			WithArgs(id).
			WillReturnRows(rows)

		session, err := repo.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, session.ID)
		assert.Equal(t, "anna", session.Login)
		assert.Equal(t, "backend-token", session.AccessToken)
		assert.Equal(t, domain.SessionStateLoggedIn, session.State)
		assert.Equal(t, expires, session.ExpiresAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, access_token, state, created_at, expires_at`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		session, err := repo.GetSession(ctx, id)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.Nil(t, session)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed id", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, access_token, state, created_at, expires_at`).
			WithArgs("not-a-uuid").
			WillReturnError(&pgconn.PgError{Code: "22P02"})

		_, err := repo.GetSession(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, access_token, state, created_at, expires_at`).
			WithArgs(id).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetSession(ctx, id)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSessionNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()
	id := "0b6f4c1e-3f0e-4d55-9a4f-1f3b7f6f2a10"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM sessions WHERE id`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteSession(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM sessions WHERE id`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteSession(ctx, id), domain.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_DeleteExpiredSessions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM sessions WHERE expires_at`).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		removed, err := repo.DeleteExpiredSessions(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM sessions WHERE expires_at`).
			WithArgs(now).
			WillReturnError(errors.New("database error"))

		_, err := repo.DeleteExpiredSessions(ctx, now)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
