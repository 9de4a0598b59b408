// Package fixture provides a deterministic offline schedule useful for local
// runs and tests: no network, same reports every time.
package fixture

import (
	"context"
	"time"

	domaingames "mlb-insights-service/internal/domain/games"
	"mlb-insights-service/internal/timeutil"
)

// ProviderName labels the fixture provider.
const ProviderName = "fixture"

type fixtureTeam struct {
	externalID int
	name       string
}

var clubs = []fixtureTeam{
	{147, "New York Yankees"},
	{111, "Boston Red Sox"},
	{141, "Toronto Blue Jays"},
	{139, "Tampa Bay Rays"},
}

// Provider returns a static season of games ending in a scheduled slate on
// the requested end date.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchSchedule generates a deterministic schedule: 18 completed games in the
// two weeks before end (round-robin between the fixture clubs, including one
// doubleheader day) and two scheduled games on end itself.
func (p *Provider) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	_ = ctx

	endDay, err := timeutil.ParseDate(end)
	if err != nil {
		endDay = time.Now().UTC()
	}
	startDay, err := timeutil.ParseDate(start)
	if err != nil {
		startDay = endDay.AddDate(0, 0, -14)
	}

	var rows []domaingames.RawGame
	gameID := 500000

	day := endDay.AddDate(0, 0, -14)
	if day.Before(startDay) {
		day = startDay
	}
	for i := 0; day.Before(endDay); i++ {
		home := clubs[i%len(clubs)]
		away := clubs[(i+1)%len(clubs)]
		rows = append(rows, completed(gameID, day, home, away, 3+i%5, 2+i%3))
		gameID++
		// One doubleheader halfway through the window.
		if i == 6 {
			rows = append(rows, completed(gameID, day, home, away, 1, 6))
			gameID++
		}
		day = day.AddDate(0, 0, 1)
	}

	rows = append(rows,
		scheduled(gameID, endDay, clubs[0], clubs[1]),
		scheduled(gameID+1, endDay, clubs[2], clubs[3]),
	)
	return rows, nil
}

func completed(id int, day time.Time, home, away fixtureTeam, homeRuns, awayRuns int) domaingames.RawGame {
	h, a := homeRuns, awayRuns
	return domaingames.RawGame{
		UpstreamGameID: id,
		Provider:       ProviderName,
		Date:           timeutil.FormatDate(day),
		Status:         domaingames.StatusFinal,
		HomeExternalID: home.externalID,
		HomeName:       home.name,
		HomeScore:      &h,
		AwayExternalID: away.externalID,
		AwayName:       away.name,
		AwayScore:      &a,
	}
}

func scheduled(id int, day time.Time, home, away fixtureTeam) domaingames.RawGame {
	return domaingames.RawGame{
		UpstreamGameID: id,
		Provider:       ProviderName,
		Date:           timeutil.FormatDate(day),
		Status:         domaingames.StatusScheduled,
		HomeExternalID: home.externalID,
		HomeName:       home.name,
		AwayExternalID: away.externalID,
		AwayName:       away.name,
	}
}
