package monitor

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
	"softnova.xyz/ac-monitor-service/pkg/monitor/mocks"
	_ "softnova.xyz/ac-monitor-service/pkg/testing"
)

func TestAlertDeduper_OneAlertPerOpenCondition(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIAlert := mocks.NewMockIAlert(ctrl)
	room := uuid.NewString()

	// critical x3 then normal then critical again: exactly two alerts
	mockIAlert.
		EXPECT().
		CreateAlert(gomock.Eq(room), gomock.Any()).
		Return(&models.AlertRecord{Room: room}, nil).
		Times(2)

	deduper := NewAlertDeduper(mockIAlert)

	sequence := []models.Classification{
		models.ClassificationCritical,
		models.ClassificationCritical,
		models.ClassificationCritical,
		models.ClassificationNormal,
		models.ClassificationCritical,
	}
	for _, c := range sequence {
		deduper.Observe(room, c)
	}

	assert.True(t, deduper.IsFlagged(room))
}

func TestAlertDeduper_ClearingDoesNotTouchStore(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIAlert := mocks.NewMockIAlert(ctrl)
	room := uuid.NewString()

	mockIAlert.
		EXPECT().
		CreateAlert(gomock.Eq(room), gomock.Any()).
		Return(&models.AlertRecord{Room: room}, nil).
		Times(1)

	deduper := NewAlertDeduper(mockIAlert)

	deduper.Observe(room, models.ClassificationCritical)
	assert.True(t, deduper.IsFlagged(room))

	deduper.Observe(room, models.ClassificationIdle)
	assert.False(t, deduper.IsFlagged(room))

	deduper.Observe(room, models.ClassificationAttention)
	assert.False(t, deduper.IsFlagged(room))
}

func TestAlertDeduper_PersistenceFailureSwallowed(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIAlert := mocks.NewMockIAlert(ctrl)
	room := uuid.NewString()

	// the store fails, but the room stays flagged so the next critical
	// observation does not retry the write
	mockIAlert.
		EXPECT().
		CreateAlert(gomock.Eq(room), gomock.Any()).
		Return(nil, errors.New("db unavailable")).
		Times(1)

	deduper := NewAlertDeduper(mockIAlert)

	deduper.Observe(room, models.ClassificationCritical)
	assert.True(t, deduper.IsFlagged(room))

	deduper.Observe(room, models.ClassificationCritical)
}

func TestAlertDeduper_IndependentRooms(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIAlert := mocks.NewMockIAlert(ctrl)
	roomA := uuid.NewString()
	roomB := uuid.NewString()

	mockIAlert.EXPECT().CreateAlert(gomock.Eq(roomA), gomock.Any()).Return(&models.AlertRecord{}, nil).Times(1)
	mockIAlert.EXPECT().CreateAlert(gomock.Eq(roomB), gomock.Any()).Return(&models.AlertRecord{}, nil).Times(1)

	deduper := NewAlertDeduper(mockIAlert)

	deduper.Observe(roomA, models.ClassificationCritical)
	deduper.Observe(roomB, models.ClassificationCritical)
	deduper.Observe(roomA, models.ClassificationIdle)

	assert.False(t, deduper.IsFlagged(roomA))
	assert.True(t, deduper.IsFlagged(roomB))
}
