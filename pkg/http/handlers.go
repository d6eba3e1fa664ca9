package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

const acquireLimiterKey = "acquire"

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetLatestTelemetry(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	records, err := rs.Mon.Telemetry.LatestRecords(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(records), "data": records})
}

type PruneRequest struct {
	Days int `json:"days"`
}

var pruneRequestSchema = z.Struct(z.Shape{
	"Days": z.Int().GTE(1),
})

func (rs *RestfulServer) PruneTelemetry(c *gin.Context) {
	var req PruneRequest
	if err := pruneRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	days := req.Days
	if days == 0 {
		days = 30
	}

	deleted, err := rs.Mon.Telemetry.PruneOlderThan(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted_count": deleted,
		"older_than":    time.Now().AddDate(0, 0, -days).Format(time.RFC3339),
	})
}

func (rs *RestfulServer) TriggerAcquisition(c *gin.Context) {
	if !rs.CheckLimiter(acquireLimiterKey) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if rs.Pipeline == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "acquisition pipeline not available"})
		return
	}

	summary, err := rs.Pipeline.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (rs *RestfulServer) GetSchedules(c *gin.Context) {
	entries, err := rs.Mon.Schedule.AllEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (rs *RestfulServer) GetRoomStates(c *gin.Context) {
	if rs.Reconciler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reconciler not running"})
		return
	}

	c.JSON(http.StatusOK, rs.Reconciler.Snapshot())
}

func (rs *RestfulServer) GetAlertHistory(c *gin.Context) {
	alerts, err := rs.Mon.Alert.AlertHistory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type AlertRequest struct {
	Room    string `json:"room"`
	Message string `json:"message"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"Room":    z.String().Required().Max(50),
	"Message": z.String().Required(),
})

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckLimiter("alert:" + req.Room) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alert, err := rs.Mon.Alert.CreateAlert(req.Room, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

type LimiterRequest struct {
	Key   string  `json:"key"`
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Key":   z.String().Required(),
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(req.Key, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
