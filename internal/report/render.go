// Package report renders scouting reports in a fixed, whitespace-significant
// layout and persists them under date-keyed folders. Rendering is pure: the
// same inputs always produce byte-identical text.
package report

import (
	"fmt"
	"strings"

	domainteams "mlb-insights-service/internal/domain/teams"
	"mlb-insights-service/internal/stats"
)

const (
	rule        = "============================================================"
	noData      = "N/A"
	sectionAvgs = "--- LEAGUE RUN AVERAGES (TOTAL) ---"
	sectionH2H  = "--- HEAD-TO-HEAD (H2H) HISTORY ---"
	sectionRuns = "--- RUNS SCORED BY TEAM ---"
	sectionWL   = "--- OVERALL SEASON RECORD (W-L) ---"
)

// Input carries everything the renderer needs for one matchup. The renderer
// performs no computation beyond formatting.
type Input struct {
	Date        string
	Home        domainteams.Team
	Away        domainteams.Team
	HomeTallies stats.TallySet
	AwayTallies stats.TallySet
	H2H         map[stats.Window]stats.H2HRecord
	HomeRecords map[stats.Window]stats.WinLoss
	AwayRecords map[stats.Window]stats.WinLoss
}

// Render produces the report text. Missing data renders as a literal N/A in
// place of the numeric field; the surrounding layout never changes shape.
func Render(in Input) string {
	var b strings.Builder

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, " MAJOR LEAGUE INSIGHTS: %s vs %s\n",
		strings.ToUpper(in.Home.FullName), strings.ToUpper(in.Away.FullName))
	b.WriteString(rule + "\n\n")

	b.WriteString(sectionAvgs + "\n")
	writeTotalLine(&b, in.Home.FullName, in.HomeTallies)
	writeTotalLine(&b, in.Away.FullName, in.AwayTallies)

	b.WriteString("\n" + sectionH2H + "\n")
	fmt.Fprintf(&b, "Combined Total Avg : L10: %s, L5: %s\n",
		combinedAvg(in.H2H[stats.WindowL10]), combinedAvg(in.H2H[stats.WindowL5]))
	fmt.Fprintf(&b, "%s W-L        : L10: %s, L5: %s\n",
		in.Home.FullName,
		h2hWinLoss(in.H2H[stats.WindowL10], in.Home.ID),
		h2hWinLoss(in.H2H[stats.WindowL5], in.Home.ID))

	b.WriteString("\n" + sectionRuns + "\n")
	writeRunsForLine(&b, in.Home.FullName, in.HomeTallies)
	writeRunsForLine(&b, in.Away.FullName, in.AwayTallies)

	b.WriteString("\n" + sectionWL + "\n")
	writeRecordLine(&b, in.Home.FullName, in.HomeRecords)
	writeRecordLine(&b, in.Away.FullName, in.AwayRecords)

	return b.String()
}

func writeTotalLine(b *strings.Builder, name string, set stats.TallySet) {
	fmt.Fprintf(b, "%s: All: %s | L15: %s | L10: %s | L5: %s\n",
		name,
		totalAvg(set[stats.WindowAll]),
		totalAvg(set[stats.WindowL15]),
		totalAvg(set[stats.WindowL10]),
		totalAvg(set[stats.WindowL5]))
}

func writeRunsForLine(b *strings.Builder, name string, set stats.TallySet) {
	fmt.Fprintf(b, "%s: L15: %s | L10: %s | L5: %s\n",
		name,
		runsForAvg(set[stats.WindowL15]),
		runsForAvg(set[stats.WindowL10]),
		runsForAvg(set[stats.WindowL5]))
}

func writeRecordLine(b *strings.Builder, name string, records map[stats.Window]stats.WinLoss) {
	fmt.Fprintf(b, "%s: L15: %s | L10: %s | L5: %s\n",
		name,
		winLoss(records, stats.WindowL15),
		winLoss(records, stats.WindowL10),
		winLoss(records, stats.WindowL5))
}

func totalAvg(t stats.RunTally) string {
	if !t.HasData() {
		return noData
	}
	return fmt.Sprintf("%.2f", t.Total())
}

func runsForAvg(t stats.RunTally) string {
	if !t.HasData() {
		return noData
	}
	return fmt.Sprintf("%.2f", t.RunsFor)
}

func combinedAvg(rec stats.H2HRecord) string {
	if !rec.HasData() {
		return noData
	}
	return fmt.Sprintf("%.2f", rec.CombinedAvg)
}

func h2hWinLoss(rec stats.H2HRecord, teamID string) string {
	if !rec.HasData() {
		return noData
	}
	wl := rec.Records[teamID]
	return fmt.Sprintf("%d-%d", wl.Wins, wl.Losses)
}

func winLoss(records map[stats.Window]stats.WinLoss, w stats.Window) string {
	rec, ok := records[w]
	if !ok || rec.Wins+rec.Losses+rec.Ties == 0 {
		return noData
	}
	return fmt.Sprintf("%d-%d", rec.Wins, rec.Losses)
}
