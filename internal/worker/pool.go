package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"go.uber.org/zap"
)

// Sweeper удаляет истекшие сессии
type Sweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Pool представляет пул воркеров для импорта Excel файлов.
// Сканер пула периодически чистит истекшие сессии.
type Pool struct {
	workers      int
	queue        chan domain.ImportJob
	importer     domain.Importer
	sweeper      Sweeper
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration

	mu     sync.RWMutex
	closed bool
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	importer domain.Importer,
	sweeper Sweeper,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      workers,
		queue:        make(chan domain.ImportJob, queueSize),
		importer:     importer,
		sweeper:      sweeper,
		logger:       logger,
		scanInterval: scanInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Enqueue ставит задание в очередь; false, если очередь заполнена или пул остановлен
func (p *Pool) Enqueue(job domain.ImportJob) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}

	select {
	case p.queue <- job:
		return true
	default:
		p.logger.Warn("import queue is full, dropping file",
			zap.String("session_id", job.SessionID),
			zap.String("file", job.FileName),
		)
		return false
	}
}

// worker обрабатывает задания из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case job, ok := <-p.queue:
			if !ok {
				return
			}
			p.processJob(ctx, job)
		}
	}
}

// scanner периодически удаляет истекшие сессии
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.sweepSessions(ctx)
		}
	}
}

func (p *Pool) sweepSessions(ctx context.Context) {
	removed, err := p.sweeper.SweepExpired(ctx)
	if err != nil {
		p.logger.Error("failed to sweep sessions", zap.Error(err))
		return
	}
	if removed > 0 {
		p.logger.Info("expired sessions removed", zap.Int64("count", removed))
	}
}

// processJob передает файл импортеру
func (p *Pool) processJob(ctx context.Context, job domain.ImportJob) {
	p.logger.Debug("processing import",
		zap.String("session_id", job.SessionID),
		zap.String("file", job.FileName),
	)

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("importer panicked",
				zap.String("file", job.FileName),
				zap.Any("panic", r),
			)
		}
	}()

	if err := p.importer.Import(ctx, job); err != nil {
		p.logger.Error("failed to import file",
			zap.String("session_id", job.SessionID),
			zap.String("file", job.FileName),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("file imported",
		zap.String("session_id", job.SessionID),
		zap.String("file", job.FileName),
	)
}
