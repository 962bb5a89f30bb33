package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/avc/cargo-office/internal/session"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// listLoadTimeout ограничивает общую загрузку списка периодов
const listLoadTimeout = 30 * time.Second

// PeriodService реализует domain.PeriodService. Периодами владеет бэкенд,
// сессия хранит последний загруженный список.
type PeriodService struct {
	backend  domain.BackendClient
	sessions *session.Registry
	validate *validator.Validate
	logger   *zap.Logger

	// одновременные загрузки списка для одной сессии идут одним запросом
	loads singleflight.Group
}

// NewPeriodService создает новый PeriodService
func NewPeriodService(backend domain.BackendClient, sessions *session.Registry, logger *zap.Logger) *PeriodService {
	return &PeriodService{
		backend:  backend,
		sessions: sessions,
		validate: newValidator(),
		logger:   logger,
	}
}

// ListPeriods загружает список периодов и заменяет им кэш сессии
func (s *PeriodService) ListPeriods(ctx context.Context, sessionID string) ([]domain.Period, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Общая загрузка не зависит от отмены запроса, который ее начал
	ch := s.loads.DoChan(sessionID, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), listLoadTimeout)
		defer cancel()

		periods, err := s.backend.ListPeriods(loadCtx, sess)
		if err != nil {
			return nil, err
		}
		sess.SetPeriods(periods)
		return periods, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("period service: list periods: %w", ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, s.backendError(ctx, sessionID, "list periods", res.Err)
	}
	if res.Shared {
		s.logger.Debug("period list load shared", zap.String("session_id", sessionID))
	}
	periods := res.Val.([]domain.Period)
	out := make([]domain.Period, len(periods))
	copy(out, periods)
	return out, nil
}

// GetPeriod получает период по id
func (s *PeriodService) GetPeriod(ctx context.Context, sessionID string, id int64) (*domain.Period, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	p, err := s.backend.GetPeriod(ctx, sess, id)
	if err != nil {
		return nil, s.backendError(ctx, sessionID, "get period", err)
	}
	return p, nil
}

// CreatePeriod создает период и добавляет его в конец кэша.
// Название проверяется до обращения к бэкенду.
func (s *PeriodService) CreatePeriod(ctx context.Context, sessionID, name string) (*domain.Period, error) {
	if err := s.validate.Struct(periodInput{Name: name}); err != nil {
		return nil, newValidationError(ErrInvalidPeriodName, err)
	}

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if cached, loaded := sess.Periods(); loaded && containsName(cached, name, 0) {
		return nil, domain.ErrPeriodExists
	}

	p, err := s.backend.CreatePeriod(ctx, sess, name)
	if err != nil {
		return nil, s.backendError(ctx, sessionID, "create period", err)
	}

	sess.AddPeriod(*p)
	return p, nil
}

// UpdatePeriod переименовывает период и заменяет его в кэше
func (s *PeriodService) UpdatePeriod(ctx context.Context, sessionID string, id int64, name string) (*domain.Period, error) {
	if err := s.validate.Struct(periodInput{Name: name}); err != nil {
		return nil, newValidationError(ErrInvalidPeriodName, err)
	}

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if cached, loaded := sess.Periods(); loaded && containsName(cached, name, id) {
		return nil, domain.ErrPeriodExists
	}

	p, err := s.backend.UpdatePeriod(ctx, sess, id, name)
	if err != nil {
		return nil, s.backendError(ctx, sessionID, "update period", err)
	}

	sess.ReplacePeriod(*p)
	return p, nil
}

// DeletePeriod удаляет период и убирает его из кэша
func (s *PeriodService) DeletePeriod(ctx context.Context, sessionID string, id int64) error {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.backend.DeletePeriod(ctx, sess, id); err != nil {
		return s.backendError(ctx, sessionID, "delete period", err)
	}

	sess.RemovePeriod(id)
	return nil
}

func (s *PeriodService) session(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("period service: failed to get session %s: %w", sessionID, err)
	}
	return sess, nil
}

// backendError пропускает известные ошибки как есть. После 401 сессия
// уже сброшена клиентом и удаляется из реестра.
func (s *PeriodService) backendError(ctx context.Context, sessionID, op string, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		if derr := s.sessions.Drop(ctx, sessionID); derr != nil {
			s.logger.Warn("failed to drop unauthorized session", zap.String("session_id", sessionID), zap.Error(derr))
		}
		return domain.ErrUnauthorized
	}

	var be *BackendError
	switch {
	case errors.Is(err, domain.ErrPeriodExists),
		errors.Is(err, domain.ErrPeriodNotFound),
		errors.Is(err, domain.ErrBackendInternal),
		errors.As(err, &be):
		return err
	}

	return fmt.Errorf("period service: %s: %w", op, err)
}

// containsName ищет период с тем же названием, кроме периода exceptID
func containsName(periods []domain.Period, name string, exceptID int64) bool {
	for _, p := range periods {
		if p.Name == name && p.ID != exceptID {
			return true
		}
	}
	return false
}
