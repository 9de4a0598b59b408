package config

// Config holds runtime configuration for the insights CLI.
type Config struct {
	Provider      string
	SeasonStart   string // YYYY-MM-DD; empty means derived from the run date
	WatchInterval Duration
	Reports       ReportsConfig
	StatsAPI      StatsAPIConfig
	Metrics       MetricsConfig
	TeamsFile     string // optional registry override; empty uses the embedded table
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:      envOrDefault(envProvider, defaultProvider),
		SeasonStart:   envOrDefault(envSeasonStart, ""),
		WatchInterval: durationEnvOrDefault(envWatchInterval, defaultWatchInterval),
		Reports:       loadReports(),
		StatsAPI:      loadStatsAPI(),
		Metrics:       loadMetrics(),
		TeamsFile:     envOrDefault(envTeamsFile, ""),
	}
}
