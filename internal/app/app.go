package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/cargo-office/internal/config"
	"github.com/avc/cargo-office/internal/session"
	"github.com/avc/cargo-office/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	storeMemory   = "memory"
	storePostgres = "postgres"
)

// App связывает BFF офиса: сессии пользователей, пул импорта и HTTP сервер
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool // nil, если сессии живут только в памяти процесса
	store      string
	sessions   *session.Registry
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp собирает приложение из конфигурации процесса
func NewApp() (*App, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Без DATABASE_URI сессии не переживают перезапуск
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	store := storeMemory
	if dbPool != nil {
		store = storePostgres
	}

	deps := initDependencies(cfg, dbPool, logger)
	router := setupRouter(deps, logger)

	logger.Info("cargo office configured",
		zap.String("session_store", store),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.String("backend_url", cfg.BackendURL),
		zap.Int("import_workers", cfg.WorkerPoolSize),
	)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		store:      store,
		sessions:   deps.sessions,
		workerPool: deps.workerPool,
		server:     createServer(cfg.RunAddress, router),
	}, nil
}

// Run обслуживает запросы до сигнала завершения или ошибки сервера
func (a *App) Run() error {
	ctx, stop := signalContext()
	defer stop()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	// Импорт файлов и очистка истекших сессий
	a.workerPool.Start(workerCtx)
	a.logger.Info("worker pool started")

	serveErr := a.runServer(ctx)

	a.shutdown(cancelWorkers)

	return serveErr
}
