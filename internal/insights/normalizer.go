// Package insights turns raw schedule rows into canonical game records and
// computes the scouting reports for a day's slate. Computation is pure so the
// same season snapshot always yields byte-identical reports.
package insights

import (
	"fmt"
	"log/slog"

	domaingames "mlb-insights-service/internal/domain/games"
	domainteams "mlb-insights-service/internal/domain/teams"
	"mlb-insights-service/internal/logging"
	"mlb-insights-service/internal/teams"
	"mlb-insights-service/internal/timeutil"
)

// Normalizer converts provider rows into canonical GameRecords using the team
// registry.
type Normalizer struct {
	registry *teams.Registry
	logger   *slog.Logger
}

func NewNormalizer(registry *teams.Registry, logger *slog.Logger) *Normalizer {
	return &Normalizer{registry: registry, logger: logger}
}

// Normalize filters the schedule down to completed games and canonicalizes
// each one. Incomplete rows (scheduled, live, postponed, or missing a score)
// are excluded silently. Rows naming a team the registry cannot resolve are
// logged and skipped so one bad row never sinks the run.
func (n *Normalizer) Normalize(rows []domaingames.RawGame) []domaingames.GameRecord {
	records := make([]domaingames.GameRecord, 0, len(rows))
	for _, row := range rows {
		if !row.Completed() {
			continue
		}

		rec, err := n.normalizeRow(row)
		if err != nil {
			logging.Warn(n.logger, "skipping schedule row",
				logging.FieldProvider, row.Provider,
				logging.FieldDate, row.Date,
				"error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (n *Normalizer) normalizeRow(row domaingames.RawGame) (domaingames.GameRecord, error) {
	date, err := timeutil.ParseDate(row.Date)
	if err != nil {
		return domaingames.GameRecord{}, fmt.Errorf("bad game date %q: %w", row.Date, err)
	}

	home, err := n.resolveTeam(row.HomeExternalID, row.HomeName)
	if err != nil {
		return domaingames.GameRecord{}, err
	}
	away, err := n.resolveTeam(row.AwayExternalID, row.AwayName)
	if err != nil {
		return domaingames.GameRecord{}, err
	}

	return domaingames.GameRecord{
		ID:       recordID(row),
		Provider: row.Provider,
		Date:     date,
		HomeTeam: home,
		AwayTeam: away,
		Score:    domaingames.Score{Home: *row.HomeScore, Away: *row.AwayScore},
	}, nil
}

// resolveTeam prefers the upstream numeric id and falls back to the display
// name for providers that omit ids.
func (n *Normalizer) resolveTeam(externalID int, name string) (domainteams.Team, error) {
	if externalID != 0 {
		if team, err := n.registry.ResolveExternal(externalID); err == nil {
			return team, nil
		}
	}
	return n.registry.Resolve(name)
}

// recordID builds the canonical record id. Upstream game ids are unique per
// game, so both halves of a doubleheader stay distinct.
func recordID(row domaingames.RawGame) string {
	return fmt.Sprintf("%s-%d", row.Provider, row.UpstreamGameID)
}
