package monitor

import "softnova.xyz/ac-monitor-service/pkg/models"

// Classify derives the room classification from AC state and occupancy:
//
//	on  + vacant   -> critical  (energy waste, alert-worthy)
//	on  + occupied -> normal
//	off + occupied -> attention (class without AC)
//	off + vacant   -> idle
func Classify(ac models.ACState, occupancy models.OccupancyState) models.Classification {
	switch {
	case ac == models.ACOn && occupancy == models.Vacant:
		return models.ClassificationCritical
	case ac == models.ACOn && occupancy == models.Occupied:
		return models.ClassificationNormal
	case ac == models.ACOff && occupancy == models.Occupied:
		return models.ClassificationAttention
	default:
		return models.ClassificationIdle
	}
}
