package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/avc/cargo-office/internal/repository/memory"
	"github.com/avc/cargo-office/internal/session"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}

func newTestRegistry() *session.Registry {
	return session.NewRegistry(memory.NewSessionRepository(), time.Hour, zap.NewNop())
}

// loggedInSession открывает сессию с токеном бэкенда
func loggedInSession(t *testing.T, r *session.Registry, token string) *session.Session {
	t.Helper()
	s, err := r.Begin("anna")
	require.NoError(t, err)
	require.NoError(t, r.Complete(context.Background(), s, token))
	return s
}
