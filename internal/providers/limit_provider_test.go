package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderDelaysCalls(t *testing.T) {
	inner := &scriptedProvider{}
	p := NewRateLimitedProvider(inner, 20*time.Millisecond, nil)

	start := time.Now()
	if _, err := p.FetchSchedule(context.Background(), "2025-03-01", "2025-08-25"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("expected call to wait for interval, elapsed %s", elapsed)
	}
	if inner.calls != 1 {
		t.Fatalf("expected inner call, got %d", inner.calls)
	}
}

func TestRateLimitedProviderRespectsContext(t *testing.T) {
	inner := &scriptedProvider{}
	p := NewRateLimitedProvider(inner, time.Hour, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := p.FetchSchedule(ctx, "2025-03-01", "2025-08-25"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("inner provider should not have been called")
	}
}

func TestRateLimitedProviderWithoutInner(t *testing.T) {
	p := NewRateLimitedProvider(nil, time.Millisecond, nil)
	if _, err := p.FetchSchedule(context.Background(), "", ""); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
