// Package runner drives report generation: one-shot for the report command
// and on an interval for watch mode.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mlb-insights-service/internal/insights"
	"mlb-insights-service/internal/logging"
	"mlb-insights-service/internal/metrics"
	"mlb-insights-service/internal/providers"
	"mlb-insights-service/internal/report"
	"mlb-insights-service/internal/store"
	"mlb-insights-service/internal/timeutil"
)

const defaultInterval = 10 * time.Minute

// ReportWriter persists rendered scouting reports.
type ReportWriter interface {
	WriteReport(rep report.ScoutingReport) error
}

// Runner fetches the season schedule, refreshes the in-memory snapshot, and
// writes one scouting report per slate matchup.
type Runner struct {
	provider    providers.ScheduleProvider
	normalizer  *insights.Normalizer
	store       *store.MemoryStore
	writer      ReportWriter
	logger      *slog.Logger
	metrics     *metrics.Recorder
	interval    time.Duration
	seasonStart string // YYYY-MM-DD; empty derives from the run date
	now         func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the run loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the runner has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Options carries the optional knobs for New.
type Options struct {
	Interval    time.Duration
	SeasonStart string
	Metrics     *metrics.Recorder
	Now         func() time.Time
}

// New constructs a Runner with sane defaults.
func New(provider providers.ScheduleProvider, normalizer *insights.Normalizer, st *store.MemoryStore, writer ReportWriter, logger *slog.Logger, opts Options) *Runner {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Runner{
		provider:    provider,
		normalizer:  normalizer,
		store:       st,
		writer:      writer,
		logger:      logger,
		metrics:     opts.Metrics,
		interval:    interval,
		seasonStart: opts.SeasonStart,
		now:         now,
		done:        make(chan struct{}),
	}
}

// Start begins the watch loop until the context is cancelled or Stop is
// called. The first cycle runs immediately.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "watch started", logging.FieldDurationMS, r.interval.Milliseconds())
		_ = r.RunOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "watch stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "watch stopped")
				return
			case <-r.ticker.C:
				_ = r.RunOnce(ctx)
			}
		}
	}()
}

// Stop halts the watch loop.
func (r *Runner) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// RunOnce executes one full cycle: fetch the schedule from the season start
// through the run date, refresh the snapshot, and write a report for every
// matchup on the run date's slate. Failures are recorded but never abort the
// remaining matchups.
func (r *Runner) RunOnce(ctx context.Context) error {
	start := time.Now()
	r.recordAttempt(start)

	runDate := timeutil.FormatDate(r.now().UTC())
	err := r.runCycle(ctx, runDate)

	r.metrics.RecordRunCycle(time.Since(start), err)
	if err != nil {
		logging.Error(r.logger, "run cycle failed", err,
			logging.FieldDate, runDate,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		r.recordFailure(err, start)
		return err
	}

	r.recordSuccess(start)
	return nil
}

func (r *Runner) runCycle(ctx context.Context, runDate string) error {
	seasonStart := r.seasonStart
	if seasonStart == "" {
		seasonStart = timeutil.FormatDate(timeutil.SeasonStart(r.now().UTC()))
	}

	rows, err := r.provider.FetchSchedule(ctx, seasonStart, runDate)
	if err != nil {
		return fmt.Errorf("fetch schedule: %w", err)
	}

	records := r.normalizer.Normalize(rows)
	r.store.SetGames(records)

	slate := r.normalizer.MatchupsForDate(rows, runDate)
	reports := insights.ComputeReports(runDate, r.store.ListGames(), slate)

	var writeErrs []error
	written := 0
	for _, rep := range reports {
		if r.writer == nil {
			continue
		}
		if err := r.writer.WriteReport(rep); err != nil {
			logging.Error(r.logger, "report write failed", err, logging.FieldMatchup, rep.Matchup())
			writeErrs = append(writeErrs, fmt.Errorf("write %s: %w", rep.ID(), err))
			continue
		}
		written++
		r.metrics.RecordReportWritten(rep.Matchup())
	}

	logging.Info(r.logger, "run cycle complete",
		logging.FieldDate, runDate,
		logging.FieldCount, written,
		"games", len(records),
		"slate", len(slate))

	return errors.Join(writeErrs...)
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Runner) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

// Store exposes the season snapshot store.
func (r *Runner) Store() *store.MemoryStore {
	return r.store
}
