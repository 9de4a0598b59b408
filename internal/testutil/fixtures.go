package testutil

import (
	"fmt"

	domaingames "mlb-insights-service/internal/domain/games"
	domainteams "mlb-insights-service/internal/domain/teams"
)

// SampleTeam returns a minimal canonical team fixture with the provided id.
func SampleTeam(id string) domainteams.Team {
	return domainteams.Team{
		ID:           id,
		Name:         id,
		FullName:     "Team " + id,
		Abbreviation: id,
		ExternalID:   1,
	}
}

// SampleRecord returns a completed game fixture between home and away on the
// given date with the given score.
func SampleRecord(id, date string, home, away domainteams.Team, homeRuns, awayRuns int) domaingames.GameRecord {
	return domaingames.GameRecord{
		ID:       id,
		Provider: "test",
		Date:     MustParseDate(date),
		HomeTeam: home,
		AwayTeam: away,
		Score:    domaingames.Score{Home: homeRuns, Away: awayRuns},
	}
}

// SampleRawGame returns a completed raw schedule row with the provided id.
func SampleRawGame(id int, date string, homeExt, awayExt, homeRuns, awayRuns int) domaingames.RawGame {
	return domaingames.RawGame{
		UpstreamGameID: id,
		Provider:       "test",
		Date:           date,
		Status:         domaingames.StatusFinal,
		HomeExternalID: homeExt,
		HomeName:       fmt.Sprintf("home-%d", homeExt),
		HomeScore:      IntPtr(homeRuns),
		AwayExternalID: awayExt,
		AwayName:       fmt.Sprintf("away-%d", awayExt),
		AwayScore:      IntPtr(awayRuns),
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
