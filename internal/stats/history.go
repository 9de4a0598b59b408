// Package stats implements the statistical engine: team histories, rolling
// run averages, head-to-head summaries, and season win-loss records. Every
// function is pure; histories are shared read-only across matchups.
package stats

import (
	"sort"

	domaingames "mlb-insights-service/internal/domain/games"
)

// SortRecords orders records ascending by date, breaking same-day ties
// (doubleheaders) by record id so runs are reproducible.
func SortRecords(records []domaingames.GameRecord) []domaingames.GameRecord {
	out := make([]domaingames.GameRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// BuildHistories derives each team's ordered history from the full season
// record set. Records are deduplicated by id; both sides of a doubleheader
// are kept because each carries its own upstream id. The input is never
// mutated.
func BuildHistories(records []domaingames.GameRecord) map[string][]domaingames.GameRecord {
	seen := make(map[string]struct{}, len(records))
	deduped := make([]domaingames.GameRecord, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		deduped = append(deduped, r)
	}

	ordered := SortRecords(deduped)

	histories := make(map[string][]domaingames.GameRecord)
	for _, r := range ordered {
		histories[r.HomeTeam.ID] = append(histories[r.HomeTeam.ID], r)
		histories[r.AwayTeam.ID] = append(histories[r.AwayTeam.ID], r)
	}
	return histories
}
