package statsapi

import (
	"strings"

	domaingames "mlb-insights-service/internal/domain/games"
)

func mapGame(date string, g gameResponse) domaingames.RawGame {
	if date == "" && len(g.GameDate) >= 10 {
		date = g.GameDate[:10]
	}
	return domaingames.RawGame{
		UpstreamGameID: g.GamePk,
		Provider:       ProviderName,
		Date:           date,
		Status:         mapStatus(g.Status),
		HomeExternalID: g.Teams.Home.Team.ID,
		HomeName:       g.Teams.Home.Team.Name,
		HomeScore:      g.Teams.Home.Score,
		AwayExternalID: g.Teams.Away.Team.ID,
		AwayName:       g.Teams.Away.Team.Name,
		AwayScore:      g.Teams.Away.Score,
	}
}

func mapStatus(s statusResponse) domaingames.GameStatus {
	detailed := strings.ToLower(s.DetailedState)
	switch {
	case strings.Contains(detailed, "postponed"):
		return domaingames.StatusPostponed
	case strings.Contains(detailed, "cancel"):
		return domaingames.StatusCanceled
	}

	switch strings.ToLower(s.AbstractGameState) {
	case "final":
		return domaingames.StatusFinal
	case "live":
		return domaingames.StatusInProgress
	default:
		return domaingames.StatusScheduled
	}
}
