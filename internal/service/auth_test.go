package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	domainmocks "github.com/avc/cargo-office/internal/domain/mocks"
	"github.com/avc/cargo-office/internal/utils/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_Login(t *testing.T) {
	mockBackend := domainmocks.NewBackendClientMock(t)
	registry := newTestRegistry()
	jwtManager := jwt.NewManager("secret", time.Hour)
	svc := NewAuthService(mockBackend, registry, jwtManager, zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockBackend.EXPECT().Login(mock.Anything, "anna", "secret").Return("backend-token", nil).Once()

		token, err := svc.Login(ctx, "anna", "secret")
		require.NoError(t, err)

		sessionID, err := jwtManager.Validate(token)
		require.NoError(t, err)

		sess, err := registry.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStateLoggedIn, sess.State())
		backendToken, ok := sess.AccessToken()
		assert.True(t, ok)
		assert.Equal(t, "backend-token", backendToken)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockBackend.EXPECT().Login(mock.Anything, "anna", "wrong").Return("", domain.ErrInvalidCredentials).Once()

		before := registry.Len()
		_, err := svc.Login(ctx, "anna", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, before, registry.Len())
	})

	t.Run("Backend unavailable", func(t *testing.T) {
		mockBackend.EXPECT().Login(mock.Anything, "anna", "secret").Return("", domain.ErrBackendUnavailable).Once()

		_, err := svc.Login(ctx, "anna", "secret")
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})

	t.Run("Empty password", func(t *testing.T) {
		_, err := svc.Login(ctx, "anna", "")
		assert.ErrorIs(t, err, ErrInvalidInput)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "required", verr.Fields["Password"])
	})
}

func TestAuthService_LogoutAndSession(t *testing.T) {
	registry := newTestRegistry()
	svc := NewAuthService(domainmocks.NewBackendClientMock(t), registry, jwt.NewManager("secret", time.Hour), zap.NewNop())
	ctx := context.Background()

	sess := loggedInSession(t, registry, "backend-token")

	info, err := svc.Session(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, "anna", info.Login)
	assert.Empty(t, info.AccessToken)

	require.NoError(t, svc.Logout(ctx, sess.ID()))

	_, err = svc.Session(ctx, sess.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Logout(ctx, sess.ID()), domain.ErrSessionNotFound)
}
