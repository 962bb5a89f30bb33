package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_sessions.up.sql"}, names)
}

func TestRunMigrations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS sessions`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))

		require.NoError(t, RunMigrations(ctx, mock, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS sessions`).
			WillReturnError(errors.New("permission denied"))

		assert.Error(t, RunMigrations(ctx, mock, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
