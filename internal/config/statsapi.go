package config

import "time"

// StatsAPIConfig controls the MLB Stats API client.
type StatsAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsBaseURL, ""),
		Timeout: durationEnvOrDefault(envStatsTimeout, 0),
	}
}
