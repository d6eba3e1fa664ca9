package acquire

import (
	"encoding/json"
	"strings"
)

// Reader payload statuses as emitted by the external metering-reader process.
const (
	readerStatusSuccess            = "success"
	readerStatusAPIError           = "api_error"
	readerStatusNoInternet         = "no_internet"
	readerStatusDeviceDisconnected = "dispositivo_desconectado"
)

// RawReading is one untrusted reading from the reader's data array. Fields
// are loosely typed on purpose; transform.go hardens them.
type RawReading struct {
	Timestamp   any `json:"timestamp"`
	DeviceGID   any `json:"device_gid"`
	ChannelNum  any `json:"channel_num"`
	ChannelName any `json:"channel_name"`
	UsageKWH    any `json:"usage_kWh"`
	UsageW      any `json:"usage_W"`
	Percentage  any `json:"percentage"`
}

// Outcome is the decoded reader payload, one variant per status
// discriminator. Anything unrecognized or unparseable lands in Unknown.
type Outcome interface {
	outcome()
}

type Success struct {
	ExecutionTime float64
	Data          []RawReading
}

type APIError struct {
	Message       string
	ExecutionTime float64
	Timestamp     string
}

type NoInternet struct {
	Message   string
	Timestamp string
}

type DeviceDisconnected struct {
	Message    string
	Suggestion string
	Timestamp  string
}

type Unknown struct {
	Raw string
}

func (Success) outcome()            {}
func (APIError) outcome()           {}
func (NoInternet) outcome()         {}
func (DeviceDisconnected) outcome() {}
func (Unknown) outcome()            {}

type payloadEnvelope struct {
	Status        string       `json:"status"`
	Message       string       `json:"message"`
	Suggestion    string       `json:"suggestion"`
	Timestamp     string       `json:"timestamp"`
	ExecutionTime float64      `json:"execution_time"`
	Data          []RawReading `json:"data"`
}

// stripControlChars removes the non-printable characters the reader
// occasionally leaks into stdout (C0 controls, DEL, C1 controls).
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}

// ParsePayload decodes reader stdout into an Outcome. Strict parse first; on
// failure the text is sanitized and parsed once more; if that also fails the
// raw text is returned as Unknown instead of an error.
func ParsePayload(raw []byte) Outcome {
	var env payloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		cleaned := stripControlChars(string(raw))
		if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
			return Unknown{Raw: string(raw)}
		}
	}

	switch env.Status {
	case readerStatusSuccess:
		return Success{ExecutionTime: env.ExecutionTime, Data: env.Data}
	case readerStatusAPIError:
		return APIError{Message: env.Message, ExecutionTime: env.ExecutionTime, Timestamp: env.Timestamp}
	case readerStatusNoInternet:
		return NoInternet{Message: env.Message, Timestamp: env.Timestamp}
	case readerStatusDeviceDisconnected:
		return DeviceDisconnected{Message: env.Message, Suggestion: env.Suggestion, Timestamp: env.Timestamp}
	default:
		return Unknown{Raw: string(raw)}
	}
}
