package monitor

import (
	"go.uber.org/zap"
	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/models"
)

func (m *Monitor) createAlert(room string, message string) (*models.AlertRecord, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	alert := models.AlertRecord{
		Room:    room,
		Message: message,
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	if err := m.Db.Conn.Create(&alert).Error; err != nil {
		return nil, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))

	return &alert, nil
}

func (m *Monitor) alertHistory() ([]models.AlertRecord, error) {
	var alerts []models.AlertRecord
	err := m.Db.Conn.
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	monitor *Monitor
}

func (ia *IAlertImpl) CreateAlert(room string, message string) (*models.AlertRecord, error) {
	return ia.monitor.createAlert(room, message)
}

func (ia *IAlertImpl) AlertHistory() ([]models.AlertRecord, error) {
	return ia.monitor.alertHistory()
}

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{monitor: m}
}
