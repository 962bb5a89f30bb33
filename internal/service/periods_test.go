package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	domainmocks "github.com/avc/cargo-office/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPeriodService_ListPeriods(t *testing.T) {
	ctx := context.Background()

	t.Run("Success fills the cache", func(t *testing.T) {
		mockBackend := domainmocks.NewBackendClientMock(t)
		registry := newTestRegistry()
		svc := NewPeriodService(mockBackend, registry, zap.NewNop())
		sess := loggedInSession(t, registry, "token")

		periods := []domain.Period{{ID: 1, Name: "2024"}}
		mockBackend.EXPECT().ListPeriods(mock.Anything, sess).Return(periods, nil).Once()

		got, err := svc.ListPeriods(ctx, sess.ID())
		require.NoError(t, err)
		assert.Equal(t, periods, got)

		cached, loaded := sess.Periods()
		assert.True(t, loaded)
		assert.Equal(t, periods, cached)
	})

	t.Run("Concurrent loads share one backend call", func(t *testing.T) {
		mockBackend := domainmocks.NewBackendClientMock(t)
		registry := newTestRegistry()
		svc := NewPeriodService(mockBackend, registry, zap.NewNop())
		sess := loggedInSession(t, registry, "token")

		release := make(chan struct{})
		mockBackend.EXPECT().ListPeriods(mock.Anything, sess).
			RunAndReturn(func(context.Context, domain.TokenSource) ([]domain.Period, error) {
				<-release
				return []domain.Period{{ID: 1, Name: "2024"}}, nil
			}).Once()

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := svc.ListPeriods(ctx, sess.ID())
				assert.NoError(t, err)
				assert.Len(t, got, 1)
			}()
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()
	})

	t.Run("Unauthorized drops the session", func(t *testing.T) {
		mockBackend := domainmocks.NewBackendClientMock(t)
		registry := newTestRegistry()
		svc := NewPeriodService(mockBackend, registry, zap.NewNop())
		sess := loggedInSession(t, registry, "token")

		mockBackend.EXPECT().ListPeriods(mock.Anything, sess).
			RunAndReturn(func(_ context.Context, ts domain.TokenSource) ([]domain.Period, error) {
				ts.Invalidate()
				return nil, domain.ErrUnauthorized
			}).Once()

		_, err := svc.ListPeriods(ctx, sess.ID())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = registry.Get(ctx, sess.ID())
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		_, err = svc.ListPeriods(ctx, sess.ID())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Network error keeps its kind", func(t *testing.T) {
		mockBackend := domainmocks.NewBackendClientMock(t)
		registry := newTestRegistry()
		svc := NewPeriodService(mockBackend, registry, zap.NewNop())
		sess := loggedInSession(t, registry, "token")

		mockBackend.EXPECT().ListPeriods(mock.Anything, sess).
			Return(nil, errors.Join(domain.ErrBackendUnavailable, errors.New("dial tcp"))).Once()

		_, err := svc.ListPeriods(ctx, sess.ID())
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})
}

func TestPeriodService_ListPeriods_CancelledCallerDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"period_id":1,"period_name":"2024"}]`))
	}))
	defer server.Close()

	registry := newTestRegistry()
	backend := NewBackendClient(server.URL, "default", 5*time.Second)
	svc := NewPeriodService(backend, registry, zap.NewNop())
	sess := loggedInSession(t, registry, "token")

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.ListPeriods(firstCtx, sess.ID())
		firstErr <- err
	}()
	<-started

	type result struct {
		periods []domain.Period
		err     error
	}
	second := make(chan result, 1)
	go func() {
		periods, err := svc.ListPeriods(context.Background(), sess.ID())
		second <- result{periods: periods, err: err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, []domain.Period{{ID: 1, Name: "2024"}}, got.periods)

	cached, loaded := sess.Periods()
	assert.True(t, loaded)
	assert.Len(t, cached, 1)
}

func TestPeriodService_CreatePeriod(t *testing.T) {
	ctx := context.Background()
	mockBackend := domainmocks.NewBackendClientMock(t)
	registry := newTestRegistry()
	svc := NewPeriodService(mockBackend, registry, zap.NewNop())
	sess := loggedInSession(t, registry, "token")
	sess.SetPeriods([]domain.Period{{ID: 1, Name: "2024"}})

	t.Run("Three digits rejected without a backend call", func(t *testing.T) {
		_, err := svc.CreatePeriod(ctx, sess.ID(), "202")
		assert.ErrorIs(t, err, ErrInvalidPeriodName)
	})

	t.Run("Non-digits rejected", func(t *testing.T) {
		_, err := svc.CreatePeriod(ctx, sess.ID(), "20a5")
		assert.ErrorIs(t, err, ErrInvalidPeriodName)
	})

	t.Run("Year accepted and appended", func(t *testing.T) {
		mockBackend.EXPECT().CreatePeriod(mock.Anything, sess, "2025").
			Return(&domain.Period{ID: 2, Name: "2025"}, nil).Once()

		p, err := svc.CreatePeriod(ctx, sess.ID(), "2025")
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.ID)

		cached, _ := sess.Periods()
		assert.Equal(t, []domain.Period{{ID: 1, Name: "2024"}, {ID: 2, Name: "2025"}}, cached)
	})

	t.Run("Duplicate known from cache", func(t *testing.T) {
		_, err := svc.CreatePeriod(ctx, sess.ID(), "2024")
		assert.ErrorIs(t, err, domain.ErrPeriodExists)
	})

	t.Run("Duplicate reported by backend", func(t *testing.T) {
		mockBackend.EXPECT().CreatePeriod(mock.Anything, sess, "2026").
			Return(nil, domain.ErrPeriodExists).Once()

		_, err := svc.CreatePeriod(ctx, sess.ID(), "2026")
		assert.ErrorIs(t, err, domain.ErrPeriodExists)
	})
}

func TestPeriodService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	mockBackend := domainmocks.NewBackendClientMock(t)
	registry := newTestRegistry()
	svc := NewPeriodService(mockBackend, registry, zap.NewNop())
	sess := loggedInSession(t, registry, "token")
	sess.SetPeriods([]domain.Period{{ID: 1, Name: "2024"}, {ID: 2, Name: "2025"}})

	t.Run("Rename", func(t *testing.T) {
		mockBackend.EXPECT().UpdatePeriod(mock.Anything, sess, int64(1), "2023").
			Return(&domain.Period{ID: 1, Name: "2023"}, nil).Once()

		_, err := svc.UpdatePeriod(ctx, sess.ID(), 1, "2023")
		require.NoError(t, err)

		cached, _ := sess.Periods()
		assert.Equal(t, "2023", cached[0].Name)
	})

	t.Run("Rename to own name is allowed", func(t *testing.T) {
		mockBackend.EXPECT().UpdatePeriod(mock.Anything, sess, int64(2), "2025").
			Return(&domain.Period{ID: 2, Name: "2025"}, nil).Once()

		_, err := svc.UpdatePeriod(ctx, sess.ID(), 2, "2025")
		require.NoError(t, err)
	})

	t.Run("Invalid name", func(t *testing.T) {
		_, err := svc.UpdatePeriod(ctx, sess.ID(), 1, "")
		assert.ErrorIs(t, err, ErrInvalidPeriodName)
	})

	t.Run("Not found", func(t *testing.T) {
		mockBackend.EXPECT().GetPeriod(mock.Anything, sess, int64(9)).
			Return(nil, domain.ErrPeriodNotFound).Once()

		_, err := svc.GetPeriod(ctx, sess.ID(), 9)
		assert.ErrorIs(t, err, domain.ErrPeriodNotFound)
	})

	t.Run("Delete removes from cache", func(t *testing.T) {
		mockBackend.EXPECT().DeletePeriod(mock.Anything, sess, int64(1)).Return(nil).Once()

		require.NoError(t, svc.DeletePeriod(ctx, sess.ID(), 1))

		cached, _ := sess.Periods()
		assert.Equal(t, []domain.Period{{ID: 2, Name: "2025"}}, cached)
	})

	t.Run("Unknown session", func(t *testing.T) {
		err := svc.DeletePeriod(ctx, "missing", 1)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestValidPeriodName(t *testing.T) {
	assert.True(t, ValidPeriodName("2025"))
	assert.False(t, ValidPeriodName("202"))
	assert.False(t, ValidPeriodName("20255"))
	assert.False(t, ValidPeriodName(" 2025"))
	assert.False(t, ValidPeriodName(""))
}
