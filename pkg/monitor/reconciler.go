package monitor

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
)

const (
	DefaultSensorInterval   = 15 * time.Second
	DefaultScheduleInterval = 60 * time.Second

	// SensorMaxAge bounds how old a reading may be and still drive an "on"
	// state. Anything older is treated as no reading at all.
	SensorMaxAge = 5 * time.Minute
)

// Reconciler merges schedule occupancy and sensor AC state into one
// authoritative per-room classification table. Two pollers run on independent
// cadences: a slow one refreshing occupancy and a fast one refreshing AC
// state. Both degrade to safe defaults (vacant / off) on failure and never
// abort the loop.
type Reconciler struct {
	Telemetry  ITelemetry
	Schedule   ISchedule
	Deduper    *AlertDeduper
	ChannelMap ChannelRoomMap

	SensorInterval   time.Duration
	ScheduleInterval time.Duration

	mu    sync.Mutex
	rooms map[string]*models.RoomState
}

func NewReconciler(telemetry ITelemetry, schedule ISchedule, deduper *AlertDeduper, cmap ChannelRoomMap) *Reconciler {
	r := &Reconciler{
		Telemetry:        telemetry,
		Schedule:         schedule,
		Deduper:          deduper,
		ChannelMap:       cmap,
		SensorInterval:   DefaultSensorInterval,
		ScheduleInterval: DefaultScheduleInterval,
		rooms:            make(map[string]*models.RoomState),
	}
	for _, room := range cmap.Rooms() {
		r.rooms[room] = &models.RoomState{
			Room:           room,
			ACState:        models.ACOff,
			Occupancy:      models.Vacant,
			Classification: models.ClassificationIdle,
		}
	}
	return r
}

// Start launches both pollers. Each runs one immediate cycle, then ticks
// until the context is cancelled.
func (r *Reconciler) Start(ctx context.Context) {
	go r.pollLoop(ctx, r.ScheduleInterval, r.RefreshSchedules)
	go r.pollLoop(ctx, r.SensorInterval, r.RefreshSensors)
}

func (r *Reconciler) pollLoop(ctx context.Context, interval time.Duration, refresh func()) {
	refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

// RefreshSchedules recomputes occupancy for every room from the schedule
// store. A fetch failure degrades every room to vacant, matching the
// no-entries rule.
func (r *Reconciler) RefreshSchedules() {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReconcile),
	)

	byRoom := make(map[string][]models.ScheduleEntry)
	entries, err := r.Schedule.AllEntries()
	if err != nil {
		logger.Warn("Schedule fetch failed, rooms degrade to vacant", zap.Error(err))
	} else {
		for _, e := range entries {
			byRoom[e.Room] = append(byRoom[e.Room], e)
		}
	}

	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	for room, state := range r.rooms {
		state.Occupancy = models.Vacant
		if IsOccupied(byRoom[room], now) {
			state.Occupancy = models.Occupied
		}
	}
	r.reclassifyLocked(now)
}

// RefreshSensors recomputes AC state for every room from the latest
// telemetry. A query failure degrades every room to off; a stale "on" is
// never retained.
func (r *Reconciler) RefreshSensors() {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReconcile),
	)

	latest, err := r.Telemetry.LatestPerChannel(SensorMaxAge)
	if err != nil {
		logger.Warn("Sensor query failed, rooms degrade to off", zap.Error(err))
		latest = nil
	}
	projected := ProjectACStates(latest, r.ChannelMap)

	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	for room, state := range r.rooms {
		power, ok := projected[room]
		if !ok {
			power = RoomPower{State: models.ACOff, PowerW: 0}
		}
		state.ACState = power.State
		state.PowerW = power.PowerW
	}
	r.reclassifyLocked(now)
}

// reclassifyLocked recomputes every room's classification from the latest
// cached states and drives the alert state machine. Caller holds r.mu, which
// also gives the deduper its single-writer discipline.
func (r *Reconciler) reclassifyLocked(now time.Time) {
	for room, state := range r.rooms {
		state.Classification = Classify(state.ACState, state.Occupancy)
		state.UpdatedAt = now
		if r.Deduper != nil {
			r.Deduper.Observe(room, state.Classification)
		}
	}
}

// Snapshot returns a copy of the reconciled table sorted by room, for the
// display layer.
func (r *Reconciler) Snapshot() []models.RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()

	states := make([]models.RoomState, 0, len(r.rooms))
	for _, state := range r.rooms {
		states = append(states, *state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Room < states[j].Room })
	return states
}
