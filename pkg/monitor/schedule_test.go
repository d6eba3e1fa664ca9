package monitor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
	_ "softnova.xyz/ac-monitor-service/pkg/testing"
)

func TestReplaceRoomEntries(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, mon, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	room := uuid.NewString()

	err := mon.Schedule.ReplaceRoomEntries(room, []models.ScheduleEntry{
		{Weekday: models.WeekdayLunes, StartMinute: models.MinuteOfDay(8, 0), EndMinute: models.MinuteOfDay(9, 0)},
		{Weekday: models.WeekdayMartes, StartMinute: models.MinuteOfDay(10, 0), EndMinute: models.MinuteOfDay(12, 0)},
	})
	require.NoError(t, err)

	entries, err := mon.Schedule.EntriesForRoom(room)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// a replacement swaps the whole weekly schedule
	err = mon.Schedule.ReplaceRoomEntries(room, []models.ScheduleEntry{
		{Weekday: models.WeekdayViernes, StartMinute: models.MinuteOfDay(14, 0), EndMinute: models.MinuteOfDay(16, 0)},
	})
	require.NoError(t, err)

	entries, err = mon.Schedule.EntriesForRoom(room)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.WeekdayViernes, entries[0].Weekday)
}

func TestReplaceRoomEntries_RejectsInvertedWindow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, mon, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	room := uuid.NewString()

	err := mon.Schedule.ReplaceRoomEntries(room, []models.ScheduleEntry{
		{Weekday: models.WeekdayLunes, StartMinute: models.MinuteOfDay(9, 0), EndMinute: models.MinuteOfDay(8, 0)},
	})
	require.Error(t, err)

	entries, err := mon.Schedule.EntriesForRoom(room)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be written when validation fails")
}

func TestAllEntries_IncludesEveryRoom(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, mon, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	roomA := uuid.NewString()
	roomB := uuid.NewString()

	require.NoError(t, mon.Schedule.ReplaceRoomEntries(roomA, []models.ScheduleEntry{
		{Weekday: models.WeekdayLunes, StartMinute: 480, EndMinute: 540},
	}))
	require.NoError(t, mon.Schedule.ReplaceRoomEntries(roomB, []models.ScheduleEntry{
		{Weekday: models.WeekdayJueves, StartMinute: 600, EndMinute: 660},
	}))

	entries, err := mon.Schedule.AllEntries()
	require.NoError(t, err)

	rooms := map[string]bool{}
	for _, e := range entries {
		rooms[e.Room] = true
	}
	assert.True(t, rooms[roomA])
	assert.True(t, rooms[roomB])
}
