package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
	_ "softnova.xyz/ac-monitor-service/pkg/testing"
)

// deviceGID returns a value unlikely to collide across tests sharing the
// in-memory database.
func deviceGID() int {
	return int(time.Now().UnixNano() % 1_000_000_000)
}

func TestInsertBatch_CountsDuplicates(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, mon, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	gid := deviceGID()
	ts := time.Now().UTC().Truncate(time.Second)
	batch := []models.TelemetryRecord{
		{Timestamp: ts, DeviceGID: gid, ChannelNum: 1, ChannelName: "C14", UsageW: 100},
		{Timestamp: ts, DeviceGID: gid, ChannelNum: 2, ChannelName: "C13", UsageW: 200},
	}

	inserted, err := mon.Telemetry.InsertBatch(batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// resubmitting the same readings inserts nothing
	resubmit := []models.TelemetryRecord{
		{Timestamp: ts, DeviceGID: gid, ChannelNum: 1, ChannelName: "C14", UsageW: 100},
		{Timestamp: ts, DeviceGID: gid, ChannelNum: 2, ChannelName: "C13", UsageW: 200},
		{Timestamp: ts, DeviceGID: gid, ChannelNum: 3, ChannelName: "C10", UsageW: 300},
	}
	inserted, err = mon.Telemetry.InsertBatch(resubmit)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestLatestRecords_OrderedDescending(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, mon, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	gid := deviceGID()
	base := time.Now().UTC().Truncate(time.Second)
	batch := []models.TelemetryRecord{
		{Timestamp: base.Add(-2 * time.Minute), DeviceGID: gid, ChannelNum: 1, UsageW: 1},
		{Timestamp: base.Add(-1 * time.Minute), DeviceGID: gid, ChannelNum: 1, UsageW: 2},
		{Timestamp: base, DeviceGID: gid, ChannelNum: 1, UsageW: 3},
	}
	_, err := mon.Telemetry.InsertBatch(batch)
	require.NoError(t, err)

	records, err := mon.Telemetry.LatestRecords(100)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Timestamp.After(records[i-1].Timestamp),
			"records must be ordered newest first")
	}
}

func TestLatestPerChannel_NewestWinsAndStaleExcluded(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, mon, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	gid := deviceGID()
	now := time.Now().UTC().Truncate(time.Second)
	// channel 61: an older and a newer reading; channel 62: stale only
	batch := []models.TelemetryRecord{
		{Timestamp: now.Add(-90 * time.Second), DeviceGID: gid, ChannelNum: 61, UsageW: 100},
		{Timestamp: now.Add(-10 * time.Second), DeviceGID: gid, ChannelNum: 61, UsageW: 900},
		{Timestamp: now.Add(-time.Hour), DeviceGID: gid, ChannelNum: 62, UsageW: 500},
	}
	_, err := mon.Telemetry.InsertBatch(batch)
	require.NoError(t, err)

	latest, err := mon.Telemetry.LatestPerChannel(5 * time.Minute)
	require.NoError(t, err)

	require.Contains(t, latest, 61)
	assert.Equal(t, 900.0, latest[61].UsageW)
	assert.NotContains(t, latest, 62, "stale readings must not project an AC state")
}

func TestPruneOlderThan(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, mon, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	gid := deviceGID()
	old := time.Now().UTC().AddDate(0, 0, -40)
	fresh := time.Now().UTC().Truncate(time.Second)
	_, err := mon.Telemetry.InsertBatch([]models.TelemetryRecord{
		{Timestamp: old, DeviceGID: gid, ChannelNum: 71, UsageW: 10},
		{Timestamp: fresh, DeviceGID: gid, ChannelNum: 71, UsageW: 20},
	})
	require.NoError(t, err)

	deleted, err := mon.Telemetry.PruneOlderThan(30)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	var count int64
	err = mon.Db.Conn.Model(&models.TelemetryRecord{}).
		Where("device_gid = ? AND timestamp < ?", gid, time.Now().AddDate(0, 0, -30)).
		Count(&count).Error
	require.NoError(t, err)
	assert.Zero(t, count)

	var freshCount int64
	err = mon.Db.Conn.Model(&models.TelemetryRecord{}).
		Where("device_gid = ? AND channel_num = 71 AND usage_w = 20", gid).
		Count(&freshCount).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), freshCount)
}
