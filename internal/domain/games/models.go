package games

import (
	"time"

	"mlb-insights-service/internal/domain/teams"
)

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Score captures home and away runs.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// RawGame is one schedule row as delivered by a provider, before team
// canonicalization. Scores are pointers because unplayed games carry none.
type RawGame struct {
	UpstreamGameID int        `json:"upstreamGameId"`
	Provider       string     `json:"provider"`
	Date           string     `json:"date"` // YYYY-MM-DD
	Status         GameStatus `json:"status"`
	HomeExternalID int        `json:"homeExternalId"`
	HomeName       string     `json:"homeName"`
	HomeScore      *int       `json:"homeScore,omitempty"`
	AwayExternalID int        `json:"awayExternalId"`
	AwayName       string     `json:"awayName"`
	AwayScore      *int       `json:"awayScore,omitempty"`
}

// Completed reports whether the raw row is a finished game with both scores.
func (g RawGame) Completed() bool {
	return g.Status == StatusFinal && g.HomeScore != nil && g.AwayScore != nil
}

// GameRecord is one completed game in canonical form. Records are immutable
// once built; histories share them read-only across matchups.
type GameRecord struct {
	ID       string     `json:"id"`
	Provider string     `json:"provider"`
	Date     time.Time  `json:"date"`
	HomeTeam teams.Team `json:"homeTeam"`
	AwayTeam teams.Team `json:"awayTeam"`
	Score    Score      `json:"score"`
}

// Outcome classifies a record from one team's perspective.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// RunsFor returns the runs scored by teamID in this game.
func (g GameRecord) RunsFor(teamID string) int {
	if g.HomeTeam.ID == teamID {
		return g.Score.Home
	}
	return g.Score.Away
}

// RunsAgainst returns the runs allowed by teamID in this game.
func (g GameRecord) RunsAgainst(teamID string) int {
	if g.HomeTeam.ID == teamID {
		return g.Score.Away
	}
	return g.Score.Home
}

// Involves reports whether teamID played in this game.
func (g GameRecord) Involves(teamID string) bool {
	return g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID
}

// OutcomeFor classifies the game for teamID. Ties are a distinct outcome and
// never count as a win or loss for either side.
func (g GameRecord) OutcomeFor(teamID string) Outcome {
	runsFor, runsAgainst := g.RunsFor(teamID), g.RunsAgainst(teamID)
	switch {
	case runsFor > runsAgainst:
		return OutcomeWin
	case runsFor < runsAgainst:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}
