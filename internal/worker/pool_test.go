package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	domainmocks "github.com/avc/cargo-office/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) SweepExpired(context.Context) (int64, error) {
	s.calls.Add(1)
	return 1, s.err
}

func TestPool_ProcessJob(t *testing.T) {
	mockImporter := domainmocks.NewImporterMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, 10, time.Hour, mockImporter, &countingSweeper{}, logger)

	job := domain.ImportJob{SessionID: "s1", FileName: "data.xlsx", Data: []byte("PK")}
	mockImporter.EXPECT().Import(mock.Anything, job).Return(nil).Once()

	pool.processJob(context.Background(), job)
}

func TestPool_ProcessJob_ImporterError(t *testing.T) {
	mockImporter := domainmocks.NewImporterMock(t)
	pool := NewPool(1, 10, time.Hour, mockImporter, &countingSweeper{}, zap.NewNop())

	job := domain.ImportJob{SessionID: "s1", FileName: "data.xlsx"}
	mockImporter.EXPECT().Import(mock.Anything, job).Return(errors.New("broken file")).Once()

	pool.processJob(context.Background(), job)
}

func TestPool_ProcessJob_ImporterPanic(t *testing.T) {
	mockImporter := domainmocks.NewImporterMock(t)
	pool := NewPool(1, 10, time.Hour, mockImporter, &countingSweeper{}, zap.NewNop())

	job := domain.ImportJob{FileName: "data.xlsx"}
	mockImporter.EXPECT().Import(mock.Anything, job).
		RunAndReturn(func(context.Context, domain.ImportJob) error { panic("boom") }).Once()

	assert.NotPanics(t, func() { pool.processJob(context.Background(), job) })
}

func TestPool_EnqueueRunsJobs(t *testing.T) {
	mockImporter := domainmocks.NewImporterMock(t)
	pool := NewPool(2, 10, time.Hour, mockImporter, &countingSweeper{}, zap.NewNop())

	done := make(chan string, 3)
	mockImporter.EXPECT().Import(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, job domain.ImportJob) error {
			done <- job.FileName
			return nil
		}).Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	for _, name := range []string{"a.xlsx", "b.xls", "c.xlsm"} {
		assert.True(t, pool.Enqueue(domain.ImportJob{FileName: name}))
	}

	got := map[string]bool{}
	for i := 0; i < 3; i++ {
		select {
		case name := <-done:
			got[name] = true
		case <-time.After(time.Second):
			t.Fatal("import was not processed")
		}
	}
	assert.Len(t, got, 3)

	cancel()
	pool.Stop()
	assert.False(t, pool.Enqueue(domain.ImportJob{FileName: "late.xlsx"}))
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	pool := NewPool(0, 1, time.Hour, domainmocks.NewImporterMock(t), &countingSweeper{}, zap.NewNop())

	assert.True(t, pool.Enqueue(domain.ImportJob{FileName: "a.xlsx"}))
	assert.False(t, pool.Enqueue(domain.ImportJob{FileName: "b.xlsx"}))
}

func TestPool_ScannerSweepsSessions(t *testing.T) {
	sweeper := &countingSweeper{}
	pool := NewPool(0, 1, 10*time.Millisecond, domainmocks.NewImporterMock(t), sweeper, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	pool.Stop()
}

func TestPool_ScannerSurvivesErrors(t *testing.T) {
	sweeper := &countingSweeper{err: errors.New("db down")}
	pool := NewPool(0, 1, 10*time.Millisecond, domainmocks.NewImporterMock(t), sweeper, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	pool.Stop()
}
