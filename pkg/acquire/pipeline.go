package acquire

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/monitor"
)

// Status summarizes one acquisition cycle.
type Status string

const (
	StatusSuccess            Status = "success"
	StatusNoValidData        Status = "no_valid_data"
	StatusNoConnection       Status = "no_connection"
	StatusDeviceError        Status = "device_error"
	StatusDeviceDisconnected Status = "device_disconnected"
	StatusTimeout            Status = "timeout"
	StatusProcessError       Status = "process_error"
	StatusUnknown            Status = "unknown"
)

// Summary is the structured outcome of one pipeline execution. Every
// expected failure mode maps onto a status here instead of an error.
type Summary struct {
	Status         Status          `json:"status"`
	Message        string          `json:"message,omitempty"`
	InsertedCount  int             `json:"inserted_count"`
	DuplicateCount int             `json:"duplicate_count"`
	InvalidRecords []InvalidRecord `json:"invalid_records,omitempty"`
	ElapsedSeconds float64         `json:"elapsed_seconds"`
}

const (
	insertAttempts    = 3
	insertBackoffBase = time.Second
)

// Pipeline runs one acquisition cycle: invoke the reader, decode its payload,
// validate the readings, and persist the valid ones with bounded retry.
type Pipeline struct {
	Reader    Reader
	Telemetry monitor.ITelemetry

	// InsertBackoff is overridable so tests do not sit through real delays.
	InsertBackoff common.BackoffFn
}

// Execute never returns an error for an expected failure mode; those become
// Summary statuses. The error return is reserved for genuinely unexpected
// conditions (miswired pipeline), which the job scheduler retries.
func (p *Pipeline) Execute(ctx context.Context) (*Summary, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAcquire,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPipeline),
	)

	if p.Reader == nil || p.Telemetry == nil {
		return nil, errors.New("pipeline not wired: reader and telemetry are required")
	}

	start := time.Now()
	finish := func(s *Summary) (*Summary, error) {
		s.ElapsedSeconds = time.Since(start).Seconds()
		logger.Info("Acquisition cycle finished",
			zap.String("status", string(s.Status)),
			zap.Int("inserted", s.InsertedCount),
			zap.Int("duplicates", s.DuplicateCount),
			zap.Int("invalid", len(s.InvalidRecords)),
			zap.Float64("elapsed_seconds", s.ElapsedSeconds))
		return s, nil
	}

	raw, err := p.Reader.ReadOnce(ctx)
	if err != nil {
		if errors.Is(err, ErrReaderTimeout) {
			return finish(&Summary{Status: StatusTimeout, Message: err.Error()})
		}
		return finish(&Summary{Status: StatusProcessError, Message: err.Error()})
	}

	switch outcome := ParsePayload(raw).(type) {
	case NoInternet:
		return finish(&Summary{Status: StatusNoConnection, Message: outcome.Message})

	case APIError:
		logger.Warn("Reader reported API error", zap.String("message", outcome.Message))
		return finish(&Summary{Status: StatusDeviceError, Message: outcome.Message})

	case DeviceDisconnected:
		return finish(&Summary{Status: StatusDeviceDisconnected, Message: outcome.Message})

	case Unknown:
		logger.Warn("Unparseable reader payload",
			zap.String("raw", common.Truncate(outcome.Raw, maxLogLength)))
		return finish(&Summary{Status: StatusUnknown, Message: "unrecognized reader output"})

	case Success:
		valid, invalid := TransformAndValidate(outcome.Data)
		if len(invalid) > 0 {
			logger.Warn("Invalid readings rejected", zap.Int("count", len(invalid)))
		}
		if len(valid) == 0 {
			return finish(&Summary{Status: StatusNoValidData, InvalidRecords: invalid})
		}

		backoff := p.InsertBackoff
		if backoff == nil {
			backoff = common.LinearBackoff(insertBackoffBase)
		}

		inserted := 0
		insertErr := common.Retry(insertAttempts, backoff, func() error {
			n, err := p.Telemetry.InsertBatch(valid)
			if err != nil {
				return err
			}
			inserted = n
			return nil
		})
		if insertErr != nil {
			// all attempts failed; degrade to a zero-inserted result
			logger.Error("Telemetry insert failed after retries", zap.Error(insertErr))
			return finish(&Summary{
				Status:         StatusSuccess,
				Message:        insertErr.Error(),
				InsertedCount:  0,
				DuplicateCount: 0,
				InvalidRecords: invalid,
			})
		}

		return finish(&Summary{
			Status:         StatusSuccess,
			InsertedCount:  inserted,
			DuplicateCount: len(valid) - inserted,
			InvalidRecords: invalid,
		})

	default:
		return finish(&Summary{Status: StatusUnknown})
	}
}
