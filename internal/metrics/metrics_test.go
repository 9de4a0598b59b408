package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttempts(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("statsapi", 120*time.Millisecond, nil)
	r.RecordProviderAttempt("statsapi", 80*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("statsapi")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.LastCallLatency != 80*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %s", snap.LastCallLatency)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("statsapi", 30*time.Second)
	r.RecordRateLimit("statsapi", 0)

	snap := r.Snapshot("statsapi")
	if snap.RateLimitHits != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != 30*time.Second {
		t.Fatalf("expected retry-after preserved, got %s", snap.LastRetryAfter)
	}
}

func TestRecorderTracksRunCycles(t *testing.T) {
	r := NewRecorder()

	r.RecordRunCycle(time.Second, nil)
	r.RecordRunCycle(time.Second, errors.New("fetch failed"))
	r.RecordReportWritten("NYY_vs_BOS")

	runs := r.RunStats()
	if runs.Cycles != 2 || runs.Errors != 1 || runs.ReportsWritten != 1 {
		t.Fatalf("unexpected run stats: %+v", runs)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("statsapi", time.Second, nil)
	r.RecordRunCycle(time.Second, nil)
	r.RecordReportWritten("x")
	if snap := r.Snapshot("statsapi"); snap.Calls != 0 {
		t.Fatalf("expected zero snapshot from nil recorder")
	}
}

func TestSetupDisabledReturnsBareRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown should be a no-op: %v", err)
	}
}
