package testutil

import (
	"context"

	domaingames "mlb-insights-service/internal/domain/games"
	"mlb-insights-service/internal/providers"
)

// GoodProvider returns the provided rows with no error.
type GoodProvider struct {
	Games []domaingames.RawGame
}

func (p GoodProvider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	_ = ctx
	_ = start
	_ = end
	return p.Games, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	return nil, p.Err
}

// EmptyProvider returns no rows, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	return []domaingames.RawGame{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	return nil, providers.ErrProviderUnavailable
}

// NotifyingProvider returns rows and closes the notify channel on first fetch.
type NotifyingProvider struct {
	Games  []domaingames.RawGame
	Notify chan struct{}
}

func (p *NotifyingProvider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	_ = ctx
	_ = start
	_ = end
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Games, nil
}
