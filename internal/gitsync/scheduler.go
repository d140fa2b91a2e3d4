package gitsync

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs periodic background syncs.
type Scheduler struct {
	syncer   *Syncer
	interval time.Duration
	logger   *slog.Logger
	started  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a scheduler that syncs every interval.
func NewScheduler(syncer *Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger.With("component", "sync-scheduler"),
		started:  make(chan struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the sync loop. Blocks until ctx is cancelled or Stop is called.
// Start must be called at most once.
func (s *Scheduler) Start(ctx context.Context) error {
	close(s.started)
	s.logger.Info("sync scheduler started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sync scheduler stopping (context cancelled)")
			close(s.doneCh)
			return ctx.Err()
		case <-s.stopCh:
			s.logger.Info("sync scheduler stopping (stop called)")
			close(s.doneCh)
			return nil
		case <-ticker.C:
			if _, err := s.syncer.Sync(ctx); err != nil {
				s.logger.Error("scheduled sync failed", "error", err)
			}
		}
	}
}

// Stop gracefully shuts down the scheduler and waits for the loop to exit.
// Safe to call more than once, and a no-op when Start was never launched.
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	select {
	case <-s.started:
		<-s.doneCh
	default:
	}
	return nil
}
