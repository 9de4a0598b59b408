package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"mlb-insights-service/internal/config"
	"mlb-insights-service/internal/insights"
	"mlb-insights-service/internal/metrics"
	"mlb-insights-service/internal/providers"
	"mlb-insights-service/internal/providers/fixture"
	"mlb-insights-service/internal/providers/statsapi"
	"mlb-insights-service/internal/report"
	"mlb-insights-service/internal/teams"
)

// buildRegistry loads the canonical team table, honoring an on-disk override.
func buildRegistry(cfg config.Config) (*teams.Registry, error) {
	if cfg.TeamsFile != "" {
		return teams.LoadFile(cfg.TeamsFile)
	}
	return teams.Load()
}

// buildProvider constructs the configured schedule source wrapped with
// retries. Watch mode additionally rate-limits calls to stay polite to the
// upstream API.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, rateLimited bool) (providers.ScheduleProvider, error) {
	var inner providers.ScheduleProvider
	switch cfg.Provider {
	case "statsapi":
		inner = statsapi.NewClient(statsapi.Config{
			BaseURL: cfg.StatsAPI.BaseURL,
			Timeout: cfg.StatsAPI.Timeout,
		})
	case "fixture":
		inner = fixture.New()
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	wrapped := providers.NewRetryingProvider(inner, logger, recorder, cfg.Provider, 0, 0)
	if rateLimited {
		wrapped = providers.NewRateLimitedProvider(wrapped, 15*time.Second, logger)
	}
	return wrapped, nil
}

func buildNormalizer(registry *teams.Registry, logger *slog.Logger) *insights.Normalizer {
	return insights.NewNormalizer(registry, logger)
}

func buildWriter(cfg config.Config) *report.Writer {
	return report.NewWriter(cfg.Reports.Dir, cfg.Reports.RetentionDays)
}
