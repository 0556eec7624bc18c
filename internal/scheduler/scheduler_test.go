package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"afisha/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Start_FlushesOnTick(t *testing.T) {
	stats := mocks.NewMockHitFlusher(t)

	flushed := make(chan struct{}, 1)
	stats.EXPECT().FlushPending(mock.Anything).RunAndReturn(
		func(_ context.Context) (int, error) {
			select {
			case flushed <- struct{}{}:
			default:
			}
			return 3, nil
		})

	s := New(stats, 10*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not flush within a second")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}
}

func TestScheduler_Start_KeepsRunningAfterFlushError(t *testing.T) {
	stats := mocks.NewMockHitFlusher(t)

	calls := make(chan struct{}, 2)
	stats.EXPECT().FlushPending(mock.Anything).RunAndReturn(
		func(_ context.Context) (int, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return 0, context.DeadlineExceeded
		})

	s := New(stats, 10*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	// ошибка на первом тике не останавливает цикл
	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("scheduler stopped ticking after error")
		}
	}
}

func TestScheduler_Start_StopsOnCancel(t *testing.T) {
	stats := mocks.NewMockHitFlusher(t)

	s := New(stats, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
