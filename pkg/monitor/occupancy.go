package monitor

import (
	"time"

	"softnova.xyz/ac-monitor-service/pkg/models"
)

// OccupancyMargin widens every schedule slot on both sides, so a class about
// to start or just ended still counts as occupying the room.
const OccupancyMargin = 5 * time.Minute

// IsOccupied reports whether now falls inside any of the room's schedule
// entries, with margin. A room with no entries is vacant; so is any time on a
// weekend. Pure function, no side effects.
func IsOccupied(entries []models.ScheduleEntry, now time.Time) bool {
	weekday, ok := models.WeekdayOf(now)
	if !ok {
		return false
	}

	minuteNow := time.Duration(now.Hour())*time.Hour +
		time.Duration(now.Minute())*time.Minute +
		time.Duration(now.Second())*time.Second

	for _, e := range entries {
		if e.Weekday != weekday {
			continue
		}
		start := time.Duration(e.StartMinute)*time.Minute - OccupancyMargin
		end := time.Duration(e.EndMinute)*time.Minute + OccupancyMargin
		if minuteNow >= start && minuteNow <= end {
			return true
		}
	}
	return false
}
