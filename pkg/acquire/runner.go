package acquire

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"go.uber.org/zap"
	"softnova.xyz/ac-monitor-service/pkg/common"
)

const (
	DefaultReaderTimeout = 45 * time.Second
	MaxOutputBytes       = 5 * 1024 * 1024
	maxLogLength         = 1000
)

// ErrReaderTimeout marks a reader invocation killed by its wall-clock bound.
var ErrReaderTimeout = errors.New("metering reader timed out")

// Reader produces one raw payload from the external metering device.
type Reader interface {
	ReadOnce(ctx context.Context) ([]byte, error)
}

// ProcessReader invokes the external metering-reader command and captures its
// stdout, bounded by a wall-clock timeout and a capped output buffer.
type ProcessReader struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// capWriter keeps at most cap bytes and silently discards the rest, so a
// runaway reader cannot exhaust memory.
type capWriter struct {
	buf bytes.Buffer
	max int
}

func (w *capWriter) Write(p []byte) (int, error) {
	if remaining := w.max - w.buf.Len(); remaining > 0 {
		if len(p) > remaining {
			w.buf.Write(p[:remaining])
		} else {
			w.buf.Write(p)
		}
	}
	return len(p), nil
}

func (r *ProcessReader) ReadOnce(ctx context.Context) ([]byte, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAcquire,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReader),
	)

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultReaderTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout := &capWriter{max: MaxOutputBytes}
	stderr := &capWriter{max: maxLogLength}

	cmd := exec.CommandContext(ctx, r.Command, r.Args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	if stderr.buf.Len() > 0 {
		logger.Debug("Reader stderr",
			zap.String("stderr", common.Truncate(stderr.buf.String(), maxLogLength)))
	}

	if ctx.Err() == context.DeadlineExceeded {
		return nil, ErrReaderTimeout
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Reader output",
		zap.Int("bytes", stdout.buf.Len()),
		zap.String("head", common.Truncate(stdout.buf.String(), maxLogLength)))

	return stdout.buf.Bytes(), nil
}
