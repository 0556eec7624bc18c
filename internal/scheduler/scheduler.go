package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type hitFlusher interface {
	FlushPending(ctx context.Context) (int, error)
}

// Scheduler периодически досылает отложенные хиты просмотров в сервис
// статистики.
type Scheduler struct {
	stats    hitFlusher
	interval time.Duration
	logger   logger.Logger
}

func New(
	stats hitFlusher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		stats:    stats,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.stats.FlushPending(ctx)
	if err != nil {
		s.logger.Error("failed to flush view hits",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("view hits flushed",
			logger.Int("count", sent),
		)
	}
}
