package games

import (
	"testing"

	"mlb-insights-service/internal/domain/teams"
)

func record(homeID, awayID string, home, away int) GameRecord {
	return GameRecord{
		HomeTeam: teams.Team{ID: homeID},
		AwayTeam: teams.Team{ID: awayID},
		Score:    Score{Home: home, Away: away},
	}
}

func TestRunAttributionFollowsHomeAway(t *testing.T) {
	g := record("nyy", "bos", 5, 3)

	if g.RunsFor("nyy") != 5 || g.RunsAgainst("nyy") != 3 {
		t.Fatalf("home attribution wrong: for=%d against=%d", g.RunsFor("nyy"), g.RunsAgainst("nyy"))
	}
	if g.RunsFor("bos") != 3 || g.RunsAgainst("bos") != 5 {
		t.Fatalf("away attribution wrong: for=%d against=%d", g.RunsFor("bos"), g.RunsAgainst("bos"))
	}
}

func TestOutcomeForTreatsTiesDistinctly(t *testing.T) {
	cases := []struct {
		home, away int
		want       Outcome
	}{
		{5, 3, OutcomeWin},
		{2, 4, OutcomeLoss},
		{3, 3, OutcomeTie},
	}
	for _, tc := range cases {
		g := record("nyy", "bos", tc.home, tc.away)
		if got := g.OutcomeFor("nyy"); got != tc.want {
			t.Fatalf("score %d-%d: expected %v, got %v", tc.home, tc.away, tc.want, got)
		}
	}
}

func TestCompleted(t *testing.T) {
	five, three := 5, 3
	cases := []struct {
		name string
		raw  RawGame
		want bool
	}{
		{"final with scores", RawGame{Status: StatusFinal, HomeScore: &five, AwayScore: &three}, true},
		{"scheduled", RawGame{Status: StatusScheduled}, false},
		{"final missing score", RawGame{Status: StatusFinal, HomeScore: &five}, false},
		{"in progress with scores", RawGame{Status: StatusInProgress, HomeScore: &five, AwayScore: &three}, false},
	}
	for _, tc := range cases {
		if got := tc.raw.Completed(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestInvolves(t *testing.T) {
	g := record("nyy", "bos", 1, 2)
	if !g.Involves("nyy") || !g.Involves("bos") {
		t.Fatalf("expected both participants to be involved")
	}
	if g.Involves("tor") {
		t.Fatalf("expected non-participant to be excluded")
	}
}
