package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"meeting-sync/core/reconcile"

	"go.uber.org/zap"
)

// Runner is the execution slot the scheduler fires into.
type Runner interface {
	TryRun(ctx context.Context, trigger reconcile.Trigger) (reconcile.Report, error)
}

// Scheduler fires the runner on a fixed interval. Ticks that arrive while a
// pass is still in flight are skipped, not queued.
type Scheduler struct {
	interval   time.Duration
	runOnStart bool
	runner     Runner
	logger     *zap.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped scheduler.
func New(cfg Config, runner Runner, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		interval:   cfg.Interval(),
		runOnStart: cfg.RunOnStart,
		runner:     runner,
		logger:     logger,
	}
}

// Start launches the tick loop.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler is already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	s.logger.Info("Starting sync scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_start", s.runOnStart))

	go s.loop(ctx, s.done)
	return nil
}

// Stop halts the tick loop and waits for a pass fired by it to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done
	s.logger.Info("Sync scheduler stopped")
}

// Running reports whether the tick loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.fire(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire(ctx)
		}
	}
}

// fire runs one tick. Failures are logged only: the process keeps running and
// the next tick is the retry.
func (s *Scheduler) fire(ctx context.Context) {
	s.logger.Debug("Auto syncing Calendly")

	report, err := s.runner.TryRun(ctx, reconcile.TriggerTimer)
	switch {
	case errors.Is(err, reconcile.ErrInProgress):
		s.logger.Info("Previous sync still running, skipping tick")
	case err != nil:
		s.logger.Error("Scheduled sync failed", zap.Error(err), zap.String("run_id", report.RunID))
	default:
		s.logger.Info("Calendly auto sync completed",
			zap.String("run_id", report.RunID),
			zap.Int("processed", report.Result.Processed),
			zap.Int("skipped", report.Result.Skipped),
			zap.Int("failed", report.Result.Failed))
	}
}
