package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type runStats struct {
	cycles         int
	errors         int
	reportsWritten int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// report runs. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	runs  runStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordRunCycle tracks one full report-generation cycle.
func (r *Recorder) RecordRunCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.runs.cycles++
	if err != nil {
		r.runs.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRunCycle(duration, err)
	}
}

// RecordReportWritten tracks one persisted scouting report.
func (r *Recorder) RecordReportWritten(matchup string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.runs.reportsWritten++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReportWritten(matchup)
	}
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RunSnapshot is a copy of the current run-cycle stats.
type RunSnapshot struct {
	Cycles         int
	Errors         int
	ReportsWritten int
}

func (r *Recorder) RunStats() RunSnapshot {
	if r == nil {
		return RunSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return RunSnapshot{
		Cycles:         r.runs.cycles,
		Errors:         r.runs.errors,
		ReportsWritten: r.runs.reportsWritten,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
