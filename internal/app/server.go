package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	serverReadTimeout = 15 * time.Second
	// Выгрузка xlsx и загрузка файла идут дольше обычного запроса
	serverWriteTimeout = 60 * time.Second
	serverIdleTimeout  = 60 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// createServer создает HTTP сервер BFF
func createServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runServer блокируется до отмены ctx или падения сервера.
// Ошибка запуска возвращается вызывающему, а не завершает процесс.
func (a *App) runServer(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		return nil
	case err := <-errCh:
		return err
	}
}

// shutdown останавливает прием запросов, затем импорт, затем хранилище сессий
func (a *App) shutdown(cancelWorkers context.CancelFunc) {
	a.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", zap.Error(err))
	}

	cancelWorkers()
	a.workerPool.Stop()
	a.logger.Info("worker pool stopped")

	live := a.sessions.Len()
	if a.store == storeMemory && live > 0 {
		a.logger.Warn("in-memory sessions are discarded on exit", zap.Int("sessions", live))
	}

	if a.db != nil {
		a.db.Close()
		a.logger.Info("session database closed", zap.Int("live_sessions", live))
	}

	a.logger.Info("server stopped gracefully")
	_ = a.logger.Sync()
}
