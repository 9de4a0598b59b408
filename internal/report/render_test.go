package report

import (
	"strings"
	"testing"

	domainteams "mlb-insights-service/internal/domain/teams"
	"mlb-insights-service/internal/stats"
)

var (
	yankees = domainteams.Team{ID: "nyy", FullName: "New York Yankees", Abbreviation: "NYY"}
	redSox  = domainteams.Team{ID: "bos", FullName: "Boston Red Sox", Abbreviation: "BOS"}
)

func fullInput() Input {
	return Input{
		Date: "2025-08-25",
		Home: yankees,
		Away: redSox,
		HomeTallies: stats.TallySet{
			stats.WindowAll: {Games: 20, RunsFor: 5.0, RunsAgainst: 4.0},
			stats.WindowL15: {Games: 15, RunsFor: 5.2, RunsAgainst: 4.0},
			stats.WindowL10: {Games: 10, RunsFor: 5.5, RunsAgainst: 4.25},
			stats.WindowL5:  {Games: 5, RunsFor: 6.0, RunsAgainst: 3.4},
		},
		AwayTallies: stats.TallySet{
			stats.WindowAll: {Games: 20, RunsFor: 4.5, RunsAgainst: 4.5},
			stats.WindowL15: {Games: 15, RunsFor: 4.0, RunsAgainst: 4.2},
			stats.WindowL10: {Games: 10, RunsFor: 3.9, RunsAgainst: 4.1},
			stats.WindowL5:  {Games: 5, RunsFor: 4.2, RunsAgainst: 3.8},
		},
		H2H: map[stats.Window]stats.H2HRecord{
			stats.WindowL10: {
				Games:       6,
				CombinedAvg: 8.5,
				Records: map[string]stats.WinLoss{
					"nyy": {Wins: 4, Losses: 2},
					"bos": {Wins: 2, Losses: 4},
				},
			},
			stats.WindowL5: {
				Games:       5,
				CombinedAvg: 9.2,
				Records: map[string]stats.WinLoss{
					"nyy": {Wins: 3, Losses: 2},
					"bos": {Wins: 2, Losses: 3},
				},
			},
		},
		HomeRecords: map[stats.Window]stats.WinLoss{
			stats.WindowL15: {Wins: 9, Losses: 6},
			stats.WindowL10: {Wins: 7, Losses: 3},
			stats.WindowL5:  {Wins: 3, Losses: 2},
		},
		AwayRecords: map[stats.Window]stats.WinLoss{
			stats.WindowL15: {Wins: 8, Losses: 7},
			stats.WindowL10: {Wins: 5, Losses: 5},
			stats.WindowL5:  {Wins: 2, Losses: 3},
		},
	}
}

const goldenReport = `============================================================
 MAJOR LEAGUE INSIGHTS: NEW YORK YANKEES vs BOSTON RED SOX
============================================================

--- LEAGUE RUN AVERAGES (TOTAL) ---
New York Yankees: All: 9.00 | L15: 9.20 | L10: 9.75 | L5: 9.40
Boston Red Sox: All: 9.00 | L15: 8.20 | L10: 8.00 | L5: 8.00

--- HEAD-TO-HEAD (H2H) HISTORY ---
Combined Total Avg : L10: 8.50, L5: 9.20
New York Yankees W-L        : L10: 4-2, L5: 3-2

--- RUNS SCORED BY TEAM ---
New York Yankees: L15: 5.20 | L10: 5.50 | L5: 6.00
Boston Red Sox: L15: 4.00 | L10: 3.90 | L5: 4.20

--- OVERALL SEASON RECORD (W-L) ---
New York Yankees: L15: 9-6 | L10: 7-3 | L5: 3-2
Boston Red Sox: L15: 8-7 | L10: 5-5 | L5: 2-3
`

func TestRenderMatchesGoldenLayout(t *testing.T) {
	got := Render(fullInput())
	if got != goldenReport {
		t.Fatalf("render mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, goldenReport)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	in := fullInput()
	if Render(in) != Render(in) {
		t.Fatalf("expected byte-identical renders for identical input")
	}
}

func TestRenderMissingDataKeepsShape(t *testing.T) {
	in := Input{
		Date: "2025-08-25",
		Home: yankees,
		Away: redSox,
		HomeTallies: stats.TallySet{
			stats.WindowAll: {},
			stats.WindowL15: {},
			stats.WindowL10: {},
			stats.WindowL5:  {},
		},
		AwayTallies: stats.TallySet{},
		H2H: map[stats.Window]stats.H2HRecord{
			stats.WindowL10: {},
			stats.WindowL5:  {},
		},
	}

	got := Render(in)

	wantLines := []string{
		"New York Yankees: All: N/A | L15: N/A | L10: N/A | L5: N/A",
		"Boston Red Sox: All: N/A | L15: N/A | L10: N/A | L5: N/A",
		"Combined Total Avg : L10: N/A, L5: N/A",
		"New York Yankees W-L        : L10: N/A, L5: N/A",
		"New York Yankees: L15: N/A | L10: N/A | L5: N/A",
		"Boston Red Sox: L15: N/A | L10: N/A | L5: N/A",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Fatalf("expected line %q in:\n%s", line, got)
		}
	}
	if strings.Count(got, "\n") != strings.Count(goldenReport, "\n") {
		t.Fatalf("report shape changed with missing data")
	}
}

func TestReportIdentity(t *testing.T) {
	rep := ScoutingReport{Date: "2025-08-25", Home: yankees, Away: redSox}

	if got := rep.ID(); got != "2025-08-25/NYY_vs_BOS" {
		t.Fatalf("unexpected id %q", got)
	}
	if got := rep.Filename(); got != "NYY_vs_BOS.txt" {
		t.Fatalf("unexpected filename %q", got)
	}
}
