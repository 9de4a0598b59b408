package insights

import (
	"fmt"

	domaingames "mlb-insights-service/internal/domain/games"
	domainteams "mlb-insights-service/internal/domain/teams"
	"mlb-insights-service/internal/logging"
)

// Matchup pairs the canonical teams for one slate game, home side first.
type Matchup struct {
	Home domainteams.Team
	Away domainteams.Team
}

// Key returns the deterministic matchup label, home team first.
func (m Matchup) Key() string {
	return fmt.Sprintf("%s_vs_%s", m.Home.Abbreviation, m.Away.Abbreviation)
}

// MatchupsForDate derives the day's slate from the schedule: every game dated
// on the run date, whatever its status. Doubleheaders collapse to a single
// matchup because both games share the same pairing and report. Rows with
// unresolvable teams are logged and skipped.
func (n *Normalizer) MatchupsForDate(rows []domaingames.RawGame, date string) []Matchup {
	seen := make(map[string]struct{})
	var slate []Matchup

	for _, row := range rows {
		if row.Date != date {
			continue
		}

		home, err := n.resolveTeam(row.HomeExternalID, row.HomeName)
		if err != nil {
			logging.Warn(n.logger, "skipping slate row",
				logging.FieldDate, date,
				logging.FieldTeam, row.HomeName,
				"error", err)
			continue
		}
		away, err := n.resolveTeam(row.AwayExternalID, row.AwayName)
		if err != nil {
			logging.Warn(n.logger, "skipping slate row",
				logging.FieldDate, date,
				logging.FieldTeam, row.AwayName,
				"error", err)
			continue
		}

		m := Matchup{Home: home, Away: away}
		if _, dup := seen[m.Key()]; dup {
			continue
		}
		seen[m.Key()] = struct{}{}
		slate = append(slate, m)
	}

	return slate
}
