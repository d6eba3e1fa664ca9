package monitor

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
)

func (m *Monitor) allEntries() ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := m.Db.Conn.
		Order("room asc, weekday asc, start_minute asc").
		Find(&entries).Error
	return entries, err
}

func (m *Monitor) entriesForRoom(room string) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := m.Db.Conn.
		Where("room = ?", room).
		Order("weekday asc, start_minute asc").
		Find(&entries).Error
	return entries, err
}

// replaceRoomEntries swaps a room's whole weekly schedule in one transaction,
// the way the external schedule owner submits it. Entries violating
// start < end are rejected before anything is written.
func (m *Monitor) replaceRoomEntries(room string, entries []models.ScheduleEntry) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	for _, e := range entries {
		if e.StartMinute >= e.EndMinute {
			return fmt.Errorf("schedule entry for room %s: start %d must be before end %d",
				room, e.StartMinute, e.EndMinute)
		}
	}

	err := m.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room = ?", room).Delete(&models.ScheduleEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].ID = 0
			entries[i].Room = room
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err == nil {
		logger.Info("Replaced room schedule",
			zap.String("room", room),
			zap.Int("entries", len(entries)))
	}

	return err
}

type IScheduleImpl struct {
	monitor *Monitor
}

func (is *IScheduleImpl) AllEntries() ([]models.ScheduleEntry, error) {
	return is.monitor.allEntries()
}

func (is *IScheduleImpl) EntriesForRoom(room string) ([]models.ScheduleEntry, error) {
	return is.monitor.entriesForRoom(room)
}

func (is *IScheduleImpl) ReplaceRoomEntries(room string, entries []models.ScheduleEntry) error {
	return is.monitor.replaceRoomEntries(room, entries)
}

func (m *Monitor) GetISchedule() ISchedule {
	return &IScheduleImpl{monitor: m}
}
