package acquire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"softnova.xyz/ac-monitor-service/pkg/models"
)

// TimestampFormats is the ordered list of accepted timestamp layouts; first
// match wins. Kept as explicit configuration so parsing behavior stays
// auditable.
var TimestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	"02-01-2006 15:04:05",
}

const maxChannelNameLen = 50

// InvalidRecord is a raw reading rejected during validation, kept with the
// reason and original payload for diagnostics.
type InvalidRecord struct {
	Index  int        `json:"index"`
	Reason string     `json:"reason"`
	Raw    RawReading `json:"raw"`
}

// parseTimestamp accepts any of the layout strings plus numeric epochs
// (seconds, or milliseconds when the value is too large for seconds).
func parseTimestamp(v any) (time.Time, error) {
	switch t := v.(type) {
	case string:
		for _, layout := range TimestampFormats {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("timestamp %q matches no accepted format", t)
	case float64:
		return epochToTime(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("timestamp %q is not numeric", t.String())
		}
		return epochToTime(f), nil
	case nil:
		return time.Time{}, fmt.Errorf("timestamp missing")
	default:
		return time.Time{}, fmt.Errorf("timestamp has unsupported type %T", v)
	}
}

func epochToTime(v float64) time.Time {
	// values past ~2286 in seconds are really milliseconds
	if v > 1e12 {
		return time.UnixMilli(int64(v)).UTC()
	}
	return time.Unix(int64(v), 0).UTC()
}

// coerceFloat turns whatever the reader sent into a usable float. NaN,
// infinities, and garbage all collapse to 0.
func coerceFloat(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case json.Number:
		f, _ = t.Float64()
	case string:
		f, _ = strconv.ParseFloat(t, 64)
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func coerceInt(v any) int {
	return int(coerceFloat(v))
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}

// TransformAndValidate hardens each raw reading independently: numerics are
// clamped to their valid ranges, missing channel fields are defaulted from
// the batch position, and only an unparseable timestamp rejects a record.
// Rejections never abort the batch.
func TransformAndValidate(data []RawReading) (valid []models.TelemetryRecord, invalid []InvalidRecord) {
	for index, d := range data {
		timestamp, err := parseTimestamp(d.Timestamp)
		if err != nil {
			invalid = append(invalid, InvalidRecord{Index: index, Reason: err.Error(), Raw: d})
			continue
		}

		channelNum := coerceInt(d.ChannelNum)
		if channelNum <= 0 {
			channelNum = index + 1
		}
		channelName := coerceString(d.ChannelName)
		if channelName == "" {
			channelName = fmt.Sprintf("Canal %d", index+1)
		}
		if len(channelName) > maxChannelNameLen {
			channelName = channelName[:maxChannelNameLen]
		}

		valid = append(valid, models.TelemetryRecord{
			Timestamp:   timestamp,
			DeviceGID:   coerceInt(d.DeviceGID),
			ChannelNum:  channelNum,
			ChannelName: channelName,
			UsageKWH:    roundTo(math.Max(0, coerceFloat(d.UsageKWH)), 4),
			UsageW:      roundTo(math.Max(0, coerceFloat(d.UsageW)), 2),
			Percentage:  roundTo(math.Min(math.Max(0, coerceFloat(d.Percentage)), 100), 1),
		})
	}
	return valid, invalid
}
