package monitor

import (
	"fmt"

	"go.uber.org/zap"
	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
)

// AlertDeduper turns sustained critical classifications into at most one open
// alert per room. The notified set is process-local and never persisted; it
// only exists so a room stuck on critical does not spam the alert store.
// Callers must drive Observe from a single goroutine or hold their own lock.
type AlertDeduper struct {
	alerts   IAlert
	notified map[string]struct{}
}

func NewAlertDeduper(alerts IAlert) *AlertDeduper {
	return &AlertDeduper{
		alerts:   alerts,
		notified: make(map[string]struct{}),
	}
}

// Observe advances the per-room state machine one classification cycle.
// idle -> flagged on critical persists one AlertRecord; staying critical adds
// nothing; leaving critical clears the flag without touching the store.
// Persistence failures are logged and swallowed: the flag is still set so a
// flapping alert store cannot cause an alert storm.
func (d *AlertDeduper) Observe(room string, classification models.Classification) {
	_, flagged := d.notified[room]

	if classification != models.ClassificationCritical {
		if flagged {
			delete(d.notified, room)
		}
		return
	}

	if flagged {
		return
	}
	d.notified[room] = struct{}{}

	message := fmt.Sprintf("El salón %s tiene el aire acondicionado encendido y está vacío.", room)
	if _, err := d.alerts.CreateAlert(room, message); err != nil {
		logger := common.GetLoggerWith(
			common.LoggerNameMonitorCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
		)
		logger.Warn("Failed to persist alert, condition stays flagged",
			zap.String("room", room),
			zap.Error(err))
	}
}

// IsFlagged reports whether the room currently has an open critical condition.
func (d *AlertDeduper) IsFlagged(room string) bool {
	_, ok := d.notified[room]
	return ok
}
