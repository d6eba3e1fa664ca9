package monitor

import (
	"time"

	"softnova.xyz/ac-monitor-service/pkg/db"
	"softnova.xyz/ac-monitor-service/pkg/models"
)

type ITelemetry interface {
	InsertBatch(records []models.TelemetryRecord) (int, error)
	LatestRecords(limit int) ([]models.TelemetryRecord, error)
	LatestPerChannel(within time.Duration) (map[int]models.TelemetryRecord, error)
	PruneOlderThan(days int) (int64, error)
}

type ISchedule interface {
	AllEntries() ([]models.ScheduleEntry, error)
	EntriesForRoom(room string) ([]models.ScheduleEntry, error)
	ReplaceRoomEntries(room string, entries []models.ScheduleEntry) error
}

type IAlert interface {
	CreateAlert(room string, message string) (*models.AlertRecord, error)
	AlertHistory() ([]models.AlertRecord, error)
}

type Monitor struct {
	Db        db.DB
	Telemetry ITelemetry
	Schedule  ISchedule
	Alert     IAlert
}

type ServiceOpts struct {
	Telemetry ITelemetry
	Schedule  ISchedule
	Alert     IAlert
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Telemetry != nil {
		m.Telemetry = opts.Telemetry
	}
	if opts.Schedule != nil {
		m.Schedule = opts.Schedule
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	return m
}
