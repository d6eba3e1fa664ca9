package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// ChannelRoomMap is the static wiring table from metering channel to room.
// Configuration only, never mutated at runtime.
type ChannelRoomMap map[int]string

// DefaultChannelRoomMap matches the channel wiring of the monitored building.
func DefaultChannelRoomMap() ChannelRoomMap {
	return ChannelRoomMap{
		1:  "C14",
		2:  "C13",
		3:  "C10",
		4:  "C8",
		5:  "C7",
		6:  "C9",
		7:  "C6",
		8:  "C11",
		9:  "lab",
		10: "lab2",
	}
}

// LoadChannelRoomMap reads a JSON object of channel number to room id,
// e.g. {"1": "C14", "2": "C13"}.
func LoadChannelRoomMap(path string) (ChannelRoomMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("channel map %s: %w", path, err)
	}

	cmap := make(ChannelRoomMap, len(raw))
	for k, room := range raw {
		channel, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("channel map %s: channel %q is not a number", path, k)
		}
		cmap[channel] = room
	}
	return cmap, nil
}

// Rooms returns the mapped room ids, sorted and deduplicated.
func (m ChannelRoomMap) Rooms() []string {
	seen := make(map[string]bool, len(m))
	rooms := make([]string, 0, len(m))
	for _, room := range m {
		if !seen[room] {
			seen[room] = true
			rooms = append(rooms, room)
		}
	}
	sort.Strings(rooms)
	return rooms
}
