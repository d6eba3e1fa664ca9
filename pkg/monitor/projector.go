package monitor

import "softnova.xyz/ac-monitor-service/pkg/models"

// ACOnThresholdW is the power draw above which a channel's AC is considered
// running. Standby draw sits under a watt.
const ACOnThresholdW = 1.0

// RoomPower is the projected AC state of one room.
type RoomPower struct {
	State  models.ACState
	PowerW float64
}

// ProjectACStates maps the latest per-channel readings onto rooms. Every room
// named by the channel map gets an entry; rooms whose channel has no recent
// reading are explicitly off with zero power, which is the safe default when
// the device is unreachable. Channels absent from the map are ignored.
func ProjectACStates(latest map[int]models.TelemetryRecord, cmap ChannelRoomMap) map[string]RoomPower {
	states := make(map[string]RoomPower, len(cmap))
	for _, room := range cmap.Rooms() {
		states[room] = RoomPower{State: models.ACOff, PowerW: 0}
	}

	for channel, record := range latest {
		room, ok := cmap[channel]
		if !ok {
			continue
		}
		state := models.ACOff
		if record.UsageW > ACOnThresholdW {
			state = models.ACOn
		}
		states[room] = RoomPower{State: state, PowerW: record.UsageW}
	}

	return states
}
