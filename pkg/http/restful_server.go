package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"softnova.xyz/ac-monitor-service/pkg/acquire"
	"softnova.xyz/ac-monitor-service/pkg/monitor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Mon              *monitor.Monitor
	Reconciler       *monitor.Reconciler
	Pipeline         acquire.PipelineRunner
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(key string, keyRate float64, keyBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(keyRate), keyBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.GET("/telemetry/latest", rs.GetLatestTelemetry)
		api.POST("/telemetry/prune", rs.PruneTelemetry)
		api.POST("/acquire", rs.TriggerAcquisition)
		api.GET("/schedules", rs.GetSchedules)
		api.GET("/rooms", rs.GetRoomStates)
		api.GET("/alerts", rs.GetAlertHistory)
		api.POST("/alerts", rs.CreateAlert)
		api.POST("/limiter", rs.PostLimiter)
	}
}
