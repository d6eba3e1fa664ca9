package models

import "time"

// Weekday is the explicit 5-value schedule enum. Values match the labels
// stored by the schedule owner; they are never derived from locale-formatted
// dates.
type Weekday string

const (
	WeekdayLunes     Weekday = "Lunes"
	WeekdayMartes    Weekday = "Martes"
	WeekdayMiercoles Weekday = "Miércoles"
	WeekdayJueves    Weekday = "Jueves"
	WeekdayViernes   Weekday = "Viernes"
)

// WeekdayOf maps a time to the schedule enum. The second return is false on
// weekends, which have no schedule.
func WeekdayOf(t time.Time) (Weekday, bool) {
	switch t.Weekday() {
	case time.Monday:
		return WeekdayLunes, true
	case time.Tuesday:
		return WeekdayMartes, true
	case time.Wednesday:
		return WeekdayMiercoles, true
	case time.Thursday:
		return WeekdayJueves, true
	case time.Friday:
		return WeekdayViernes, true
	default:
		return "", false
	}
}

type ACState string

const (
	ACOn  ACState = "on"
	ACOff ACState = "off"
)

type OccupancyState string

const (
	Occupied OccupancyState = "occupied"
	Vacant   OccupancyState = "vacant"
)

type Classification string

const (
	ClassificationCritical  Classification = "critical"
	ClassificationNormal    Classification = "normal"
	ClassificationAttention Classification = "attention"
	ClassificationIdle      Classification = "idle"
)

// TelemetryRecord is one power reading for one metering channel. Rows are
// immutable once stored; the unique index makes re-submitted readings no-ops
// counted as duplicates.
type TelemetryRecord struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Timestamp   time.Time `gorm:"index;uniqueIndex:idx_reading_key" json:"timestamp"`
	DeviceGID   int       `gorm:"uniqueIndex:idx_reading_key" json:"device_gid"`
	ChannelNum  int       `gorm:"uniqueIndex:idx_reading_key" json:"channel_num"`
	ChannelName string    `gorm:"type:varchar(50)" json:"channel_name"`
	UsageKWH    float64   `json:"usage_kWh"`
	UsageW      float64   `json:"usage_W"`
	Percentage  float64   `json:"percentage"`
}

// ScheduleEntry is one weekly class slot for a room. Owned by the external
// schedule service; the core only reads it. Invariant: StartMinute < EndMinute.
type ScheduleEntry struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	Room        string  `gorm:"index:idx_room_day" json:"room"`
	Weekday     Weekday `gorm:"index:idx_room_day;type:varchar(10)" json:"weekday"`
	StartMinute int     `json:"start_minute"`
	EndMinute   int     `json:"end_minute"`
}

// AlertRecord is append-only; the core never updates or deletes one.
type AlertRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Room      string    `gorm:"index" json:"room"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomState is the reconciled view of one room, rebuilt in memory every
// cycle and exposed read-only to the display layer.
type RoomState struct {
	Room           string         `json:"room"`
	ACState        ACState        `json:"ac_state"`
	Occupancy      OccupancyState `json:"occupancy"`
	Classification Classification `json:"classification"`
	PowerW         float64        `json:"power_w"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// MinuteOfDay converts hh:mm to the minutes-since-midnight form used by
// ScheduleEntry.
func MinuteOfDay(hour, minute int) int {
	return hour*60 + minute
}
