package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"softnova.xyz/ac-monitor-service/pkg/acquire"
	"softnova.xyz/ac-monitor-service/pkg/common"
	"softnova.xyz/ac-monitor-service/pkg/db"
	monHttp "softnova.xyz/ac-monitor-service/pkg/http"
	"softnova.xyz/ac-monitor-service/pkg/monitor"
)

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v, expected a duration like 15s or 15m", key, err)
	}
	return d
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v, expected an int value", key, err)
	}
	return v
}

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeyACMDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown ACM_DB_TYPE: " + dbType)
	}

	logger := common.GetLogger()

	cmap := monitor.DefaultChannelRoomMap()
	if mapPath := strings.TrimSpace(os.Getenv(common.EnvKeyACMChannelMapPath)); mapPath != "" {
		if cmap, err = monitor.LoadChannelRoomMap(mapPath); err != nil {
			log.Fatalf("Failed loading channel map: %v", err)
		}
		logger.Info("Loaded channel map", zap.String("path", mapPath), zap.Int("channels", len(cmap)))
	}

	mon := monitor.Monitor{
		Db: *dbInstance,
	}
	mon.WithServices(monitor.ServiceOpts{
		Telemetry: mon.GetITelemetry(),
		Schedule:  mon.GetISchedule(),
		Alert:     mon.GetIAlert(),
	})

	readerCommand := strings.TrimSpace(os.Getenv(common.EnvKeyACMReaderCommand))
	if readerCommand == "" {
		log.Fatal("ACM_READER_COMMAND not set, expected the metering reader command, e.g. python")
	}
	var readerArgs []string
	if rawArgs := strings.TrimSpace(os.Getenv(common.EnvKeyACMReaderArgs)); rawArgs != "" {
		readerArgs = strings.Fields(rawArgs)
	}

	pipeline := &acquire.Pipeline{
		Reader: &acquire.ProcessReader{
			Command: readerCommand,
			Args:    readerArgs,
			Timeout: acquire.DefaultReaderTimeout,
		},
		Telemetry: mon.Telemetry,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	job := &acquire.Job{
		Pipeline: pipeline,
		Interval: envDuration(common.EnvKeyACMAcquireInterval, acquire.DefaultAcquireInterval),
	}
	go job.Start(ctx)

	reconciler := monitor.NewReconciler(
		mon.Telemetry,
		mon.Schedule,
		monitor.NewAlertDeduper(mon.Alert),
		cmap,
	)
	reconciler.SensorInterval = envDuration(common.EnvKeyACMSensorInterval, monitor.DefaultSensorInterval)
	reconciler.ScheduleInterval = envDuration(common.EnvKeyACMScheduleInterval, monitor.DefaultScheduleInterval)
	reconciler.Start(ctx)

	retentionDays := envInt(common.EnvKeyACMRetentionDays, 30)
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := mon.Telemetry.PruneOlderThan(retentionDays); err != nil {
					logger.Warn("Retention sweep failed", zap.Error(err))
				}
			}
		}
	}()

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyACMDefaultRate), 64); err != nil {
		log.Fatal("Invalid ACM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyACMDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid ACM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyACMHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":3001"
	}

	rs := &monHttp.RestfulServer{
		Server:           gin.Default(),
		Mon:              &mon,
		Reconciler:       reconciler,
		Pipeline:         pipeline,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: "+httpHostPort,
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
