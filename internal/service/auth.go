package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/avc/cargo-office/internal/session"
	"github.com/avc/cargo-office/internal/utils/jwt"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthService реализует domain.AuthService: логин и пароль проверяет бэкенд,
// браузер получает JWT с id сессии, токен бэкенда остается на сервере
type AuthService struct {
	backend    domain.BackendClient
	sessions   *session.Registry
	jwtManager *jwt.Manager
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewAuthService создает новый AuthService
func NewAuthService(
	backend domain.BackendClient,
	sessions *session.Registry,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		backend:    backend,
		sessions:   sessions,
		jwtManager: jwtManager,
		validate:   newValidator(),
		logger:     logger,
	}
}

// Login аутентифицирует сотрудника и открывает сессию
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	if err := s.validate.Struct(credentials{Login: login, Password: password}); err != nil {
		return "", newValidationError(ErrInvalidInput, err)
	}

	sess, err := s.sessions.Begin(login)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to begin session: %w", err)
	}

	accessToken, err := s.backend.Login(ctx, login, password)
	if err != nil {
		if ferr := s.sessions.Fail(sess); ferr != nil {
			s.logger.Warn("failed to reset session", zap.Error(ferr))
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", err
		}
		return "", fmt.Errorf("auth service: backend login for %q: %w", login, err)
	}

	if err := s.sessions.Complete(ctx, sess, accessToken); err != nil {
		return "", fmt.Errorf("auth service: failed to store session for %q: %w", login, err)
	}

	token, err := s.jwtManager.Generate(sess.ID(), login)
	if err != nil {
		_ = s.sessions.Logout(ctx, sess)
		return "", fmt.Errorf("auth service: failed to generate token for session %s: %w", sess.ID(), err)
	}

	return token, nil
}

// Logout закрывает сессию
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return err
		}
		return fmt.Errorf("auth service: failed to get session %s: %w", sessionID, err)
	}

	if err := s.sessions.Logout(ctx, sess); err != nil {
		return fmt.Errorf("auth service: failed to logout session %s: %w", sessionID, err)
	}

	return nil
}

// Session возвращает данные сессии без токена бэкенда
func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to get session %s: %w", sessionID, err)
	}

	info := sess.Info()
	info.AccessToken = ""
	return &info, nil
}
