package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const slotKey = "reconcile"

// Slot is the single execution slot shared by every trigger source. At most one
// RunFunc executes at a time.
type Slot struct {
	run    RunFunc
	logger *zap.Logger
	now    func() time.Time

	group   singleflight.Group
	running atomic.Bool

	mu    sync.RWMutex
	last  *Report
	hooks []Hook
}

// NewSlot creates a slot executing run.
func NewSlot(run RunFunc, logger *zap.Logger) *Slot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Slot{
		run:    run,
		logger: logger,
		now:    time.Now,
	}
}

// OnComplete registers a hook called after every pass, before callers are released.
func (s *Slot) OnComplete(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Run executes a pass, or joins the pass already in flight and returns its
// report. The returned error is the pass's fatal error, if any.
func (s *Slot) Run(ctx context.Context, trigger Trigger) (Report, error) {
	v, err, shared := s.group.Do(slotKey, func() (any, error) {
		return s.execute(ctx, trigger)
	})
	if shared {
		s.logger.Debug("Joined in-flight reconciliation pass", zap.String("trigger", string(trigger)))
	}
	return v.(Report), err
}

// TryRun executes a pass only when the slot is free; otherwise it returns
// ErrInProgress without waiting.
func (s *Slot) TryRun(ctx context.Context, trigger Trigger) (Report, error) {
	if s.running.Load() {
		return Report{}, ErrInProgress
	}
	return s.Run(ctx, trigger)
}

// Running reports whether a pass currently holds the slot.
func (s *Slot) Running() bool {
	return s.running.Load()
}

// Last returns the report of the most recent finished pass.
func (s *Slot) Last() (Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Report{}, false
	}
	return *s.last, true
}

func (s *Slot) execute(ctx context.Context, trigger Trigger) (Report, error) {
	s.running.Store(true)
	defer s.running.Store(false)

	// A pass is never cancelled halfway; callers going away must not abort it.
	ctx = context.WithoutCancel(ctx)

	report := Report{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		StartedAt: s.now().UTC(),
	}
	l := s.logger.With(zap.String("run_id", report.RunID), zap.String("trigger", string(trigger)))
	l.Info("Reconciliation pass started")

	result, err := s.run(ctx)
	report.Result = result
	report.FinishedAt = s.now().UTC()
	if err != nil {
		report.Error = err.Error()
		l.Error("Reconciliation pass failed",
			zap.Error(err),
			zap.Int("processed", result.Processed),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed),
			zap.Duration("duration", report.Duration()))
	} else {
		l.Info("Reconciliation pass completed",
			zap.Int("processed", result.Processed),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed),
			zap.Duration("duration", report.Duration()))
	}

	s.mu.Lock()
	s.last = &report
	hooks := append([]Hook(nil), s.hooks...)
	s.mu.Unlock()

	for _, h := range hooks {
		h(ctx, report)
	}

	return report, err
}
