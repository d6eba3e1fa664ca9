package monitor

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
)

// insertTelemetryBatch stores readings one row at a time so a duplicate never
// poisons the rest of the batch. Duplicates hit the unique reading index and
// count as zero rows affected. The returned count is rows actually inserted;
// an error is returned only when nothing could be written at all.
func (m *Monitor) insertTelemetryBatch(records []models.TelemetryRecord) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTelemetry),
	)

	inserted := 0
	var lastErr error
	for i := range records {
		res := m.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&records[i])
		if res.Error != nil {
			lastErr = res.Error
			continue
		}
		inserted += int(res.RowsAffected)
	}

	logger.Info("Telemetry batch stored",
		zap.Int("submitted", len(records)),
		zap.Int("inserted", inserted),
		zap.Int("duplicates", len(records)-inserted))

	if inserted == 0 && lastErr != nil {
		return 0, lastErr
	}
	return inserted, nil
}

func (m *Monitor) latestRecords(limit int) ([]models.TelemetryRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var records []models.TelemetryRecord
	err := m.Db.Conn.
		Order("timestamp desc").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// latestPerChannel keeps the newest reading per channel, bounded to readings
// no older than the given window so a dead device cannot feed stale "on"
// states into the projector.
func (m *Monitor) latestPerChannel(within time.Duration) (map[int]models.TelemetryRecord, error) {
	var records []models.TelemetryRecord
	q := m.Db.Conn.Order("timestamp desc").Limit(100)
	if within > 0 {
		q = q.Where("timestamp > ?", time.Now().Add(-within))
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	latest := make(map[int]models.TelemetryRecord)
	for _, r := range records {
		if _, seen := latest[r.ChannelNum]; !seen {
			latest[r.ChannelNum] = r
		}
	}
	return latest, nil
}

func (m *Monitor) pruneOlderThan(days int) (int64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTelemetry),
	)

	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	res := m.Db.Conn.Where("timestamp < ?", cutoff).Delete(&models.TelemetryRecord{})
	if res.Error != nil {
		return 0, res.Error
	}

	logger.Info("Pruned old telemetry",
		zap.Int64("deleted", res.RowsAffected),
		zap.Time("older_than", cutoff))

	return res.RowsAffected, nil
}

type ITelemetryImpl struct {
	monitor *Monitor
}

func (it *ITelemetryImpl) InsertBatch(records []models.TelemetryRecord) (int, error) {
	return it.monitor.insertTelemetryBatch(records)
}

func (it *ITelemetryImpl) LatestRecords(limit int) ([]models.TelemetryRecord, error) {
	return it.monitor.latestRecords(limit)
}

func (it *ITelemetryImpl) LatestPerChannel(within time.Duration) (map[int]models.TelemetryRecord, error) {
	return it.monitor.latestPerChannel(within)
}

func (it *ITelemetryImpl) PruneOlderThan(days int) (int64, error) {
	return it.monitor.pruneOlderThan(days)
}

func (m *Monitor) GetITelemetry() ITelemetry {
	return &ITelemetryImpl{monitor: m}
}
