package stats

import domaingames "mlb-insights-service/internal/domain/games"

// WinLoss tallies decisive outcomes for one team. Ties are counted apart and
// never folded into wins or losses, so Wins+Losses always equals the number
// of decisive games seen.
type WinLoss struct {
	Wins   int
	Losses int
	Ties   int
}

// Decisive returns the number of games with a winner.
func (w WinLoss) Decisive() int {
	return w.Wins + w.Losses
}

// H2HRecord summarizes one window of a head-to-head slice: the combined
// total-runs average and each side's win-loss tally. Games == 0 means the
// pair has no meetings in the window ("no data", not an error).
type H2HRecord struct {
	Games       int
	CombinedAvg float64
	Records     map[string]WinLoss // keyed by canonical team id
}

// HasData reports whether the window held at least one meeting.
func (r H2HRecord) HasData() bool {
	return r.Games > 0
}

// H2HSlice extracts the games played between teamA and teamB from their
// histories. A single pass keyed by record id guarantees each meeting appears
// once even when both histories carry it, while doubleheader games survive as
// distinct entries.
func H2HSlice(teamA, teamB string, historyA, historyB []domaingames.GameRecord) []domaingames.GameRecord {
	seen := make(map[string]struct{})
	var slice []domaingames.GameRecord

	for _, history := range [][]domaingames.GameRecord{historyA, historyB} {
		for _, g := range history {
			if !g.Involves(teamA) || !g.Involves(teamB) {
				continue
			}
			if _, dup := seen[g.ID]; dup {
				continue
			}
			seen[g.ID] = struct{}{}
			slice = append(slice, g)
		}
	}

	return SortRecords(slice)
}

// ComputeH2H summarizes the slice for every window in H2HWindows.
func ComputeH2H(teamA, teamB string, slice []domaingames.GameRecord) map[Window]H2HRecord {
	out := make(map[Window]H2HRecord, len(H2HWindows))
	for _, w := range H2HWindows {
		out[w] = h2hWindow(teamA, teamB, Tail(slice, w))
	}
	return out
}

func h2hWindow(teamA, teamB string, window []domaingames.GameRecord) H2HRecord {
	rec := H2HRecord{
		Records: map[string]WinLoss{teamA: {}, teamB: {}},
	}
	if len(window) == 0 {
		return rec
	}

	var totalRuns int
	recA, recB := rec.Records[teamA], rec.Records[teamB]
	for _, g := range window {
		totalRuns += g.Score.Home + g.Score.Away
		switch g.OutcomeFor(teamA) {
		case domaingames.OutcomeWin:
			recA.Wins++
			recB.Losses++
		case domaingames.OutcomeLoss:
			recA.Losses++
			recB.Wins++
		default:
			recA.Ties++
			recB.Ties++
		}
	}

	rec.Games = len(window)
	rec.CombinedAvg = float64(totalRuns) / float64(len(window))
	rec.Records[teamA] = recA
	rec.Records[teamB] = recB
	return rec
}
