package config

import "time"

const (
	envSubreddit    = "SUBREDDIT"
	envTeam         = "TEAM"
	envTeamTricode  = "TEAM_TRICODE"
	envSeason       = "SEASON"
	envProvider     = "PROVIDER"
	envFixturePath  = "FIXTURE_PATH"
	envDryRun       = "DRY_RUN"
	envSidebar      = "SIDEBAR_ENABLED"
	envRunInterval  = "RUN_INTERVAL"
	envPort         = "PORT"
	envAdminToken   = "ADMIN_TOKEN"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envOtelInterval = "OTEL_METRIC_EXPORT_INTERVAL"

	defaultSubreddit   = "nyknicks"
	defaultTeam        = "knicks"
	defaultTeamTricode = "NYK"
	defaultPort        = "4000"
	// One tick per minute, like a "* * * * *" crontab entry.
	defaultRunInterval = time.Minute
	defaultProvider    = ProviderNBAData
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-gamethread-bot"
	defaultOtelExport  = 15 * time.Second
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderNBAData = "nbadata"
	ProviderFixture = "fixture"
)
