package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyACMDBType string = "ACM_DB_TYPE"
	EnvKeyACMDbPath string = "ACM_DB_PATH"

	EnvKeyACMHttpHostPort string = "ACM_HTTP_HOST_PORT"

	EnvKeyACMReaderCommand    string = "ACM_READER_COMMAND"
	EnvKeyACMReaderArgs       string = "ACM_READER_ARGS"
	EnvKeyACMAcquireInterval  string = "ACM_ACQUIRE_INTERVAL"
	EnvKeyACMRetentionDays    string = "ACM_RETENTION_DAYS"
	EnvKeyACMChannelMapPath   string = "ACM_CHANNEL_MAP_PATH"
	EnvKeyACMSensorInterval   string = "ACM_SENSOR_POLL_INTERVAL"
	EnvKeyACMScheduleInterval string = "ACM_SCHEDULE_POLL_INTERVAL"

	EnvKeyACMDefaultRate  string = "ACM_DEFAULT_RATE"
	EnvKeyACMDefaultBurst string = "ACM_DEFAULT_BURST"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameAcquire       string = "acquire"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory     string = "category"
	LoggerCategoryTelemetry string = "telemetry"
	LoggerCategorySchedule  string = "schedule"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryReconcile string = "reconcile"
	LoggerCategoryJob       string = "job"
	LoggerCategoryPipeline  string = "pipeline"
	LoggerCategoryReader    string = "reader"
)
