package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "mlb-insights-service/internal/domain/games"
)

// rateLimitedProvider wraps a ScheduleProvider and enforces a minimum interval
// between calls. Calls block until the interval elapses to avoid exceeding
// upstream quotas in watch mode.
type rateLimitedProvider struct {
	next     ScheduleProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a ScheduleProvider that limits calls to the given interval.
func NewRateLimitedProvider(next ScheduleProvider, interval time.Duration, logger *slog.Logger) ScheduleProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	if p == nil || p.next == nil {
		logWithProvider(ctx, p.loggerOrNil(), slog.LevelWarn, "rate-limited", "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "fetch canceled")
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.FetchSchedule(ctx, start, end)
}

func (p *rateLimitedProvider) loggerOrNil() *slog.Logger {
	if p == nil {
		return nil
	}
	return p.logger
}
