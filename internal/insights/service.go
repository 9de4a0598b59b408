package insights

import (
	domaingames "mlb-insights-service/internal/domain/games"
	"mlb-insights-service/internal/report"
	"mlb-insights-service/internal/stats"
)

// ComputeReports renders one scouting report per matchup from the season
// record set. It is pure: histories are derived once, shared read-only, and
// identical inputs always produce byte-identical reports.
func ComputeReports(date string, records []domaingames.GameRecord, slate []Matchup) []report.ScoutingReport {
	histories := stats.BuildHistories(records)

	reports := make([]report.ScoutingReport, 0, len(slate))
	for _, m := range slate {
		homeHistory := histories[m.Home.ID]
		awayHistory := histories[m.Away.ID]

		h2hSlice := stats.H2HSlice(m.Home.ID, m.Away.ID, homeHistory, awayHistory)

		in := report.Input{
			Date:        date,
			Home:        m.Home,
			Away:        m.Away,
			HomeTallies: stats.ComputeRunTallies(m.Home.ID, homeHistory),
			AwayTallies: stats.ComputeRunTallies(m.Away.ID, awayHistory),
			H2H:         stats.ComputeH2H(m.Home.ID, m.Away.ID, h2hSlice),
			HomeRecords: stats.SeasonRecords(m.Home.ID, homeHistory),
			AwayRecords: stats.SeasonRecords(m.Away.ID, awayHistory),
		}

		reports = append(reports, report.ScoutingReport{
			Date: date,
			Home: m.Home,
			Away: m.Away,
			Text: report.Render(in),
		})
	}

	return reports
}
