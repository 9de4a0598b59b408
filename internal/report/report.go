package report

import (
	"fmt"
	"path"

	domainteams "mlb-insights-service/internal/domain/teams"
)

// ScoutingReport is the immutable rendered output for one matchup. It is
// created once per matchup per run and never mutated.
type ScoutingReport struct {
	Date string
	Home domainteams.Team
	Away domainteams.Team
	Text string
}

// Matchup returns the deterministic matchup label, home team first.
func (r ScoutingReport) Matchup() string {
	return fmt.Sprintf("%s_vs_%s", r.Home.Abbreviation, r.Away.Abbreviation)
}

// ID returns the suggested report identifier: <date>/<HOME>_vs_<AWAY>.
func (r ScoutingReport) ID() string {
	return path.Join(r.Date, r.Matchup())
}

// Filename returns the report's file name within its date folder.
func (r ScoutingReport) Filename() string {
	return r.Matchup() + ".txt"
}
