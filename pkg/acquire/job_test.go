package acquire

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"softnova.xyz/ac-monitor-service/pkg/common"
)

// slowRunner counts invocations and holds each cycle open long enough to
// overlap several ticks.
type slowRunner struct {
	calls atomic.Int32
	hold  time.Duration
	err   error
}

func (r *slowRunner) Execute(_ context.Context) (*Summary, error) {
	r.calls.Add(1)
	time.Sleep(r.hold)
	if r.err != nil {
		return nil, r.err
	}
	return &Summary{Status: StatusSuccess}, nil
}

func TestJob_OverlappingTicksAreSkipped(t *testing.T) {
	runner := &slowRunner{hold: 220 * time.Millisecond}
	job := &Job{
		Pipeline: runner,
		Interval: 30 * time.Millisecond,
		Backoff:  common.NoBackoff(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	job.Start(ctx)

	// ~6 ticks fired; the first cycle is still holding, so every later
	// tick must have been skipped.
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestJob_CyclesRunOnConsecutiveTicks(t *testing.T) {
	runner := &slowRunner{}
	job := &Job{
		Pipeline: runner,
		Interval: 25 * time.Millisecond,
		Backoff:  common.NoBackoff(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 140*time.Millisecond)
	defer cancel()
	job.Start(ctx)

	assert.GreaterOrEqual(t, runner.calls.Load(), int32(3))
}

func TestJob_FailedCycleIsRetriedWithinBudget(t *testing.T) {
	runner := &slowRunner{err: errors.New("pipeline not wired")}
	job := &Job{
		Pipeline: runner,
		Interval: 30 * time.Millisecond,
		Backoff:  common.NoBackoff(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Millisecond)
	defer cancel()
	job.Start(ctx)

	// one tick, two attempts
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(2), runner.calls.Load())
}

func TestJob_StopsOnContextCancel(t *testing.T) {
	runner := &slowRunner{}
	job := &Job{Pipeline: runner, Interval: 10 * time.Millisecond, Backoff: common.NoBackoff()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on cancelled context")
	}
}
