package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingRun returns a RunFunc that blocks until release is closed and records
// the maximum number of concurrent executions.
func blockingRun(release <-chan struct{}, started chan<- struct{}, calls, active, peak *atomic.Int32) RunFunc {
	return func(ctx context.Context) (Result, error) {
		calls.Add(1)
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		started <- struct{}{}
		<-release
		active.Add(-1)
		return Result{Processed: 2, Skipped: 1}, nil
	}
}

func TestSlot_RunRecordsReport(t *testing.T) {
	slot := NewSlot(func(ctx context.Context) (Result, error) {
		return Result{Processed: 3, Failed: 1}, nil
	}, nil)

	_, ok := slot.Last()
	assert.False(t, ok)

	report, err := slot.Run(context.Background(), TriggerManual)
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, TriggerManual, report.Trigger)
	assert.Equal(t, Result{Processed: 3, Failed: 1}, report.Result)
	assert.True(t, report.Succeeded())
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	last, ok := slot.Last()
	require.True(t, ok)
	assert.Equal(t, report, last)
	assert.False(t, slot.Running())
}

func TestSlot_RunFatalError(t *testing.T) {
	boom := errors.New("identity lookup failed")
	slot := NewSlot(func(ctx context.Context) (Result, error) {
		return Result{}, boom
	}, nil)

	report, err := slot.Run(context.Background(), TriggerTimer)
	assert.ErrorIs(t, err, boom)
	assert.False(t, report.Succeeded())
	assert.Equal(t, "identity lookup failed", report.Error)
}

func TestSlot_TryRunSkipsWhileBusy(t *testing.T) {
	var calls, active, peak atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	slot := NewSlot(blockingRun(release, started, &calls, &active, &peak), nil)

	done := make(chan error, 1)
	go func() {
		_, err := slot.Run(context.Background(), TriggerManual)
		done <- err
	}()
	<-started
	assert.True(t, slot.Running())

	_, err := slot.TryRun(context.Background(), TriggerTimer)
	assert.ErrorIs(t, err, ErrInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())

	// Slot is free again, so a tick runs a new pass.
	release2 := make(chan struct{})
	close(release2)
	slot.run = blockingRun(release2, started, &calls, &active, &peak)
	go func() { <-started }()
	_, err = slot.TryRun(context.Background(), TriggerTimer)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSlot_ConcurrentRunsNeverOverlap(t *testing.T) {
	var calls, active, peak atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{}, 16)
	slot := NewSlot(blockingRun(release, started, &calls, &active, &peak), nil)

	var wg sync.WaitGroup
	reports := make([]Report, 8)
	wg.Add(1)
	go func() {
		defer wg.Done()
		reports[0], _ = slot.Run(context.Background(), TriggerManual)
	}()
	<-started

	for i := 1; i < len(reports); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i], _ = slot.Run(context.Background(), TriggerManual)
		}(i)
	}

	// Give joiners time to attach to the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load(), "passes must never execute concurrently")
	for _, r := range reports {
		assert.Equal(t, Result{Processed: 2, Skipped: 1}, r.Result)
	}
}

func TestSlot_HooksReceiveReport(t *testing.T) {
	slot := NewSlot(func(ctx context.Context) (Result, error) {
		return Result{Processed: 1}, nil
	}, nil)

	var got []Report
	slot.OnComplete(func(ctx context.Context, r Report) { got = append(got, r) })
	slot.OnComplete(func(ctx context.Context, r Report) { got = append(got, r) })

	report, err := slot.Run(context.Background(), TriggerManual)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, report.RunID, got[0].RunID)
}

func TestSlot_PassSurvivesCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slot := NewSlot(func(ctx context.Context) (Result, error) {
		return Result{}, ctx.Err()
	}, nil)

	_, err := slot.Run(ctx, TriggerManual)
	assert.NoError(t, err)
}
