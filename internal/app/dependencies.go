package app

import (
	"github.com/avc/cargo-office/internal/config"
	"github.com/avc/cargo-office/internal/domain"
	"github.com/avc/cargo-office/internal/handlers"
	"github.com/avc/cargo-office/internal/repository/memory"
	"github.com/avc/cargo-office/internal/repository/postgres"
	"github.com/avc/cargo-office/internal/service"
	"github.com/avc/cargo-office/internal/session"
	"github.com/avc/cargo-office/internal/utils/jwt"
	"github.com/avc/cargo-office/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	backend *service.HTTPBackendClient
	auth    domain.AuthService
	periods domain.PeriodService
	upload  domain.UploadService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth      *handlers.AuthHandler
	periods   *handlers.PeriodsHandler
	cargo     *handlers.CargoHandler
	upload    *handlers.UploadHandler
	dashboard *handlers.DashboardHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	sessions   *session.Registry
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// newSessionRepository выбирает хранилище сессий: PostgreSQL или память
func newSessionRepository(dbPool *pgxpool.Pool) domain.SessionRepository {
	if dbPool == nil {
		return memory.NewSessionRepository()
	}
	return postgres.NewSessionRepository(dbPool)
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.SessionTTL)
	sessions := session.NewRegistry(newSessionRepository(dbPool), cfg.SessionTTL, logger)

	// Worker pool принимает файлы импорта и чистит истекшие сессии
	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		cfg.WorkerScanInterval,
		service.NewLogImporter(logger),
		sessions,
		logger,
	)

	backend := service.NewBackendClient(cfg.BackendURL, cfg.BackendKeyword, cfg.BackendTimeout)
	svcs := &services{
		backend: backend,
		auth:    service.NewAuthService(backend, sessions, jwtManager, logger),
		periods: service.NewPeriodService(backend, sessions, logger),
		upload:  service.NewUploadService(workerPool, logger),
	}

	var db handlers.Pinger
	if dbPool != nil {
		db = dbPool
	}

	hdlrs := &handlerSet{
		auth:      handlers.NewAuthHandler(svcs.auth, logger),
		periods:   handlers.NewPeriodsHandler(svcs.periods, logger),
		cargo:     handlers.NewCargoHandler(sessions, logger),
		upload:    handlers.NewUploadHandler(svcs.upload, cfg.MaxUploadSize, logger),
		dashboard: handlers.NewDashboardHandler(logger),
		health:    handlers.NewHealthHandler(db, backend, logger),
	}

	return &dependencies{
		sessions:   sessions,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
