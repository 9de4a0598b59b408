package config

import "time"

const (
	envProvider      = "PROVIDER"
	envSeasonStart   = "SEASON_START"
	envWatchInterval = "WATCH_INTERVAL"
	envTeamsFile     = "TEAMS_FILE"
	envReportsDir    = "REPORTS_DIR"
	envReportDays    = "REPORT_RETENTION_DAYS"
	envStatsBaseURL  = "STATSAPI_BASE_URL"
	envStatsTimeout  = "STATSAPI_TIMEOUT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider = "statsapi"
	// Conservative default so watch mode stays polite to the upstream
	// schedule endpoint; box scores only change a handful of times per hour.
	defaultWatchInterval  = 10 * Duration(time.Minute)
	defaultReportsDir     = "reports"
	defaultRetentionDays  = 14
	defaultMetricsPort    = "9090"
	defaultMetricsService = "mlb-insights-service"
)
