package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	domaingames "mlb-insights-service/internal/domain/games"
	"mlb-insights-service/internal/providers"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2025, 8, 25, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseDate("2025-08-25") != time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	MustParseDate("not-a-date")
}

func TestFixtureHelpers(t *testing.T) {
	home, away := SampleTeam("nyy"), SampleTeam("bos")

	rec := SampleRecord("g1", "2025-08-01", home, away, 5, 3)
	if rec.ID != "g1" || rec.RunsFor("nyy") != 5 || rec.RunsAgainst("nyy") != 3 {
		t.Fatalf("unexpected record fixture %+v", rec)
	}

	raw := SampleRawGame(7, "2025-08-01", 147, 111, 4, 2)
	if !raw.Completed() {
		t.Fatalf("expected completed raw game, got %+v", raw)
	}
	if raw.UpstreamGameID != 7 || *raw.HomeScore != 4 || *raw.AwayScore != 2 {
		t.Fatalf("unexpected raw fixture %+v", raw)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}

	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	rows := []domaingames.RawGame{SampleRawGame(1, "2025-08-01", 147, 111, 4, 2)}

	good := GoodProvider{Games: rows}
	if got, _ := good.FetchSchedule(ctx, "2025-03-01", "2025-08-01"); len(got) != 1 {
		t.Fatalf("expected rows from GoodProvider")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchSchedule(ctx, "", ""); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	empty := EmptyProvider{}
	if got, err := empty.FetchSchedule(ctx, "", ""); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v err %v", got, err)
	}

	unavail := UnavailableProvider{}
	if _, err := unavail.FetchSchedule(ctx, "", ""); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}

	notify := &NotifyingProvider{Games: rows, Notify: make(chan struct{})}
	if _, err := notify.FetchSchedule(ctx, "", ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	select {
	case <-notify.Notify:
	default:
		t.Fatalf("expected notify channel to close")
	}
}
