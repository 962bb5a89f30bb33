package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/avc/cargo-office/internal/grid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry хранит живые сессии процесса и сохраняет их в SessionRepository.
// Сессия из хранилища, которой нет в памяти (после рестарта), поднимается
// заново с пустой таблицей.
type Registry struct {
	repo   domain.SessionRepository
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu   sync.RWMutex
	live map[string]*Session
}

// NewRegistry создает новый Registry
func NewRegistry(repo domain.SessionRepository, ttl time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		live:   make(map[string]*Session),
	}
}

// Begin создает сессию и переводит ее в состояние Authenticating
func (r *Registry) Begin(login string) (*Session, error) {
	now := r.now().UTC()
	s := newSession(domain.Session{
		ID:        uuid.NewString(),
		Login:     login,
		State:     domain.SessionStateLoggedOut,
		CreatedAt: now,
	})
	if err := s.apply(EventLoginStarted); err != nil {
		return nil, err
	}
	return s, nil
}

// Complete завершает вход: сессия получает токен бэкенда, сохраняется и
// становится доступной через Get
func (r *Registry) Complete(ctx context.Context, s *Session, accessToken string) error {
	s.mu.Lock()
	if err := s.applyLocked(EventLoginSucceeded); err != nil {
		s.mu.Unlock()
		return err
	}
	s.info.AccessToken = accessToken
	s.info.ExpiresAt = r.now().UTC().Add(r.ttl)
	info := s.info
	s.mu.Unlock()

	if err := r.repo.SaveSession(ctx, &info); err != nil {
		s.mu.Lock()
		_ = s.applyLocked(EventLogout)
		s.clearLocked()
		s.mu.Unlock()
		return fmt.Errorf("session registry: failed to save session %s: %w", info.ID, err)
	}

	r.mu.Lock()
	r.live[info.ID] = s
	r.mu.Unlock()

	r.logger.Info("session started", zap.String("session_id", info.ID), zap.String("login", info.Login))
	return nil
}

// Fail возвращает сессию в LoggedOut после неудачного входа
func (r *Registry) Fail(s *Session) error {
	return s.apply(EventLoginFailed)
}

// Get возвращает живую сессию. Истекшая или вышедшая из системы сессия
// удаляется, вызывающий получает domain.ErrSessionNotFound.
func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	now := r.now()

	r.mu.RLock()
	s, ok := r.live[id]
	r.mu.RUnlock()

	if ok {
		if s.Alive(now) {
			return s, nil
		}
		r.forget(ctx, id)
		return nil, domain.ErrSessionNotFound
	}

	info, err := r.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("session registry: failed to load session %s: %w", id, err)
	}

	if info.State != domain.SessionStateLoggedIn || info.AccessToken == "" || info.Expired(now) {
		r.forget(ctx, id)
		return nil, domain.ErrSessionNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.live[id]; ok {
		return existing, nil
	}
	s = newSession(*info)
	r.live[id] = s
	r.logger.Info("session restored", zap.String("session_id", id))
	return s, nil
}

// Sheet возвращает рабочую таблицу живой сессии
func (r *Registry) Sheet(ctx context.Context, id string) (*grid.Sheet, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Sheet(), nil
}

// Logout переводит сессию в LoggedOut и удаляет ее
func (r *Registry) Logout(ctx context.Context, s *Session) error {
	s.mu.Lock()
	err := s.applyLocked(EventLogout)
	s.clearLocked()
	s.mu.Unlock()

	if err != nil && !errors.Is(err, ErrInvalidTransition) {
		return err
	}

	return r.drop(ctx, s.ID())
}

// Drop удаляет сессию, которую бэкенд перестал принимать
func (r *Registry) Drop(ctx context.Context, id string) error {
	return r.drop(ctx, id)
}

func (r *Registry) drop(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.live, id)
	r.mu.Unlock()

	if err := r.repo.DeleteSession(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("session registry: failed to delete session %s: %w", id, err)
	}

	r.logger.Info("session ended", zap.String("session_id", id))
	return nil
}

func (r *Registry) forget(ctx context.Context, id string) {
	if err := r.drop(ctx, id); err != nil {
		r.logger.Warn("failed to drop stale session", zap.String("session_id", id), zap.Error(err))
	}
}

// SweepExpired удаляет истекшие и вышедшие из системы сессии.
// Возвращает количество удаленных сессий.
func (r *Registry) SweepExpired(ctx context.Context) (int64, error) {
	now := r.now()

	var stale []string
	r.mu.RLock()
	for id, s := range r.live {
		if !s.Alive(now) {
			stale = append(stale, id)
		}
	}
	r.mu.RUnlock()

	for _, id := range stale {
		r.forget(ctx, id)
	}

	removed, err := r.repo.DeleteExpiredSessions(ctx, now.UTC())
	if err != nil {
		return int64(len(stale)), fmt.Errorf("session registry: failed to sweep sessions: %w", err)
	}

	return int64(len(stale)) + removed, nil
}

// Len возвращает количество живых сессий в памяти
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live)
}
