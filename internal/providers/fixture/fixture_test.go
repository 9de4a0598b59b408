package fixture

import (
	"context"
	"testing"

	domaingames "mlb-insights-service/internal/domain/games"
)

func TestFetchScheduleIsDeterministic(t *testing.T) {
	p := New()

	first, err := p.FetchSchedule(context.Background(), "2025-08-11", "2025-08-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.FetchSchedule(context.Background(), "2025-08-11", "2025-08-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected identical non-empty schedules, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].UpstreamGameID != second[i].UpstreamGameID {
			t.Fatalf("row %d differs between runs", i)
		}
	}
}

func TestFetchScheduleEndsWithScheduledSlate(t *testing.T) {
	p := New()

	rows, err := p.FetchSchedule(context.Background(), "2025-08-11", "2025-08-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var scheduledOnEnd, completedBefore, doubleheaders int
	seen := make(map[string]int)
	for _, r := range rows {
		if r.Date == "2025-08-25" && r.Status == domaingames.StatusScheduled {
			scheduledOnEnd++
		}
		if r.Completed() {
			completedBefore++
			seen[r.Date]++
		}
	}
	for _, count := range seen {
		if count > 1 {
			doubleheaders++
		}
	}

	if scheduledOnEnd != 2 {
		t.Fatalf("expected 2 scheduled games on end date, got %d", scheduledOnEnd)
	}
	if completedBefore == 0 {
		t.Fatalf("expected completed history before end date")
	}
	if doubleheaders == 0 {
		t.Fatalf("expected at least one doubleheader day in the fixture season")
	}
}
