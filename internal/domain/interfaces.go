package domain

import (
	"context"
	"time"
)

// TokenSource отдает токен бэкенда конкретной сессии
type TokenSource interface {
	AccessToken() (string, bool)
	// Invalidate сбрасывает токен после ответа 401
	Invalidate()
}

// BackendClient определяет методы взаимодействия с бэкендом офиса
type BackendClient interface {
	Login(ctx context.Context, login, password string) (string, error)
	ListPeriods(ctx context.Context, ts TokenSource) ([]Period, error)
	GetPeriod(ctx context.Context, ts TokenSource, id int64) (*Period, error)
	CreatePeriod(ctx context.Context, ts TokenSource, name string) (*Period, error)
	UpdatePeriod(ctx context.Context, ts TokenSource, id int64, name string) (*Period, error)
	DeletePeriod(ctx context.Context, ts TokenSource, id int64) error
}

// SessionRepository определяет методы хранения сессий
type SessionRepository interface {
	SaveSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Importer принимает выбранный Excel файл
type Importer interface {
	Import(ctx context.Context, job ImportJob) error
}

// AuthService определяет методы входа и выхода сотрудника
type AuthService interface {
	Login(ctx context.Context, login, password string) (string, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (*Session, error)
}

// PeriodService определяет методы работы с периодами в рамках сессии
type PeriodService interface {
	ListPeriods(ctx context.Context, sessionID string) ([]Period, error)
	GetPeriod(ctx context.Context, sessionID string, id int64) (*Period, error)
	CreatePeriod(ctx context.Context, sessionID, name string) (*Period, error)
	UpdatePeriod(ctx context.Context, sessionID string, id int64, name string) (*Period, error)
	DeletePeriod(ctx context.Context, sessionID string, id int64) error
}

// UploadService определяет методы приема Excel файлов
type UploadService interface {
	Submit(ctx context.Context, job ImportJob) error
}
