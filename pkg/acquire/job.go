package acquire

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"softnova.xyz/ac-monitor-service/pkg/common"
)

const (
	DefaultAcquireInterval = 15 * time.Minute
	jobAttempts            = 2
	jobBackoffBase         = 5 * time.Second
)

// PipelineRunner is what the job drives each cycle; satisfied by *Pipeline.
type PipelineRunner interface {
	Execute(ctx context.Context) (*Summary, error)
}

// Job fires the acquisition pipeline on a fixed interval. A tick arriving
// while the previous cycle is still running is skipped entirely; nothing is
// queued and no second cycle starts.
type Job struct {
	Pipeline PipelineRunner
	Interval time.Duration

	// Backoff between retry attempts of a failed cycle; overridable in tests.
	Backoff common.BackoffFn

	mu   sync.Mutex
	busy bool
}

func (j *Job) tryBegin() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.busy {
		return false
	}
	j.busy = true
	return true
}

func (j *Job) end() {
	j.mu.Lock()
	j.busy = false
	j.mu.Unlock()
}

// Start runs the tick loop until the context is cancelled. Cycles run in
// their own goroutine so an overrunning cycle is observed as busy rather
// than blocking the ticker.
func (j *Job) Start(ctx context.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameAcquire,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryJob),
	)

	interval := j.Interval
	if interval <= 0 {
		interval = DefaultAcquireInterval
	}
	logger.Info("Acquisition job scheduled", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !j.tryBegin() {
				logger.Info("Previous acquisition cycle still running, tick skipped")
				continue
			}
			go func() {
				defer j.end()
				j.runCycle(ctx, logger)
			}()
		}
	}
}

// runCycle attempts the pipeline with a bounded retry budget. Pipeline
// outcomes are not errors; only an unexpected failure triggers a retry, and
// exhausting the budget just logs the last error.
func (j *Job) runCycle(ctx context.Context, logger *zap.Logger) {
	start := time.Now()

	backoff := j.Backoff
	if backoff == nil {
		backoff = common.LinearBackoff(jobBackoffBase)
	}

	err := common.Retry(jobAttempts, backoff, func() error {
		_, err := j.Pipeline.Execute(ctx)
		return err
	})
	if err != nil {
		logger.Error("Acquisition cycle failed after retries", zap.Error(err))
	}

	logger.Info("Acquisition cycle done", zap.Duration("elapsed", time.Since(start)))
}
