package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	domaingames "mlb-insights-service/internal/domain/games"
	"mlb-insights-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 500 * time.Millisecond
)

// retryingProvider wraps a ScheduleProvider with exponential backoff retries.
type retryingProvider struct {
	inner       ScheduleProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	initial     time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts or
// initialInterval are <= 0, defaults are used. name labels metrics and logs.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialInterval time.Duration) ScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		initial:     initialInterval,
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initial
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	var out []domaingames.RawGame

	operation := func() error {
		attempt++
		callStart := time.Now()
		rows, err := r.inner.FetchSchedule(ctx, start, end)
		r.recorder.RecordProviderAttempt(r.name, time.Since(callStart), err)
		if err != nil {
			if rlErr, ok := AsRateLimitError(err); ok {
				r.recorder.RecordRateLimit(r.name, rlErr.RetryAfter)
			}
			if attempt < r.maxAttempts {
				logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
					"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
			}
			return err
		}
		out = rows
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			"attempts", attempt, "err", err)
		return nil, err
	}
	return out, nil
}
