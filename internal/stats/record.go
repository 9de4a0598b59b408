package stats

import domaingames "mlb-insights-service/internal/domain/games"

// SeasonRecords computes the team's win-loss tally for every window in
// RecordWindows over its full history.
func SeasonRecords(teamID string, history []domaingames.GameRecord) map[Window]WinLoss {
	out := make(map[Window]WinLoss, len(RecordWindows))
	for _, w := range RecordWindows {
		var rec WinLoss
		for _, g := range Tail(history, w) {
			switch g.OutcomeFor(teamID) {
			case domaingames.OutcomeWin:
				rec.Wins++
			case domaingames.OutcomeLoss:
				rec.Losses++
			default:
				rec.Ties++
			}
		}
		out[w] = rec
	}
	return out
}
