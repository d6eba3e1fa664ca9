package monitor

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"softnova.xyz/ac-monitor-service/pkg/db"
	"softnova.xyz/ac-monitor-service/pkg/monitor/mocks"
)

func GetMockMonitorWithMemorySqliteDialector(t *testing.T, useMockTelemetry, useMockSchedule, useMockAlert bool) (
	*gomock.Controller,
	*Monitor,
	*mocks.MockITelemetry,
	*mocks.MockISchedule,
	*mocks.MockIAlert,
) {
	ctrl := gomock.NewController(t)

	mockITelemetry := mocks.NewMockITelemetry(ctrl)
	mockISchedule := mocks.NewMockISchedule(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	monInstance := (&Monitor{Db: *dbInstance})

	telemetryService := monInstance.GetITelemetry()
	if useMockTelemetry {
		telemetryService = mockITelemetry
	}

	scheduleService := monInstance.GetISchedule()
	if useMockSchedule {
		scheduleService = mockISchedule
	}

	alertService := monInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	monInstance.WithServices(ServiceOpts{
		Telemetry: telemetryService,
		Schedule:  scheduleService,
		Alert:     alertService,
	})

	return ctrl, monInstance, mockITelemetry, mockISchedule, mockIAlert
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
