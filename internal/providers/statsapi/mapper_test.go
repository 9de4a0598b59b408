package statsapi

import (
	"testing"

	domaingames "mlb-insights-service/internal/domain/games"
)

func TestMapGameTransformsFields(t *testing.T) {
	five, three := 5, 3
	resp := gameResponse{
		GamePk:   776001,
		GameDate: "2025-08-25T23:05:00Z",
		Status:   statusResponse{AbstractGameState: "Final", DetailedState: "Final"},
	}
	resp.Teams.Home.Score = &five
	resp.Teams.Home.Team.ID = 111
	resp.Teams.Home.Team.Name = "Boston Red Sox"
	resp.Teams.Away.Score = &three
	resp.Teams.Away.Team.ID = 147
	resp.Teams.Away.Team.Name = "New York Yankees"

	raw := mapGame("2025-08-25", resp)

	if raw.UpstreamGameID != 776001 || raw.Provider != ProviderName {
		t.Fatalf("unexpected id/provider: %+v", raw)
	}
	if raw.Date != "2025-08-25" {
		t.Fatalf("unexpected date %s", raw.Date)
	}
	if raw.Status != domaingames.StatusFinal {
		t.Fatalf("expected final status, got %s", raw.Status)
	}
	if raw.HomeExternalID != 111 || raw.AwayExternalID != 147 {
		t.Fatalf("unexpected team ids: %+v", raw)
	}
	if raw.HomeScore == nil || *raw.HomeScore != 5 || raw.AwayScore == nil || *raw.AwayScore != 3 {
		t.Fatalf("unexpected scores: %+v", raw)
	}
	if !raw.Completed() {
		t.Fatalf("expected completed row")
	}
}

func TestMapGameFallsBackToGameDate(t *testing.T) {
	resp := gameResponse{GameDate: "2025-04-01T17:10:00Z"}
	raw := mapGame("", resp)
	if raw.Date != "2025-04-01" {
		t.Fatalf("expected date derived from gameDate, got %s", raw.Date)
	}
}

func TestMapStatusCoversVariants(t *testing.T) {
	cases := []struct {
		abstract, detailed string
		want               domaingames.GameStatus
	}{
		{"Final", "Final", domaingames.StatusFinal},
		{"Final", "Completed Early", domaingames.StatusFinal},
		{"Live", "In Progress", domaingames.StatusInProgress},
		{"Preview", "Scheduled", domaingames.StatusScheduled},
		{"Preview", "Pre-Game", domaingames.StatusScheduled},
		{"Final", "Postponed", domaingames.StatusPostponed},
		{"Final", "Cancelled", domaingames.StatusCanceled},
		{"", "", domaingames.StatusScheduled},
	}
	for _, tc := range cases {
		got := mapStatus(statusResponse{AbstractGameState: tc.abstract, DetailedState: tc.detailed})
		if got != tc.want {
			t.Fatalf("status %q/%q: expected %s, got %s", tc.abstract, tc.detailed, tc.want, got)
		}
	}
}

func TestMapGameKeepsUnplayedScoresNil(t *testing.T) {
	resp := gameResponse{
		GamePk: 1,
		Status: statusResponse{AbstractGameState: "Preview", DetailedState: "Scheduled"},
	}
	raw := mapGame("2025-08-26", resp)
	if raw.HomeScore != nil || raw.AwayScore != nil {
		t.Fatalf("expected nil scores for unplayed game: %+v", raw)
	}
	if raw.Completed() {
		t.Fatalf("unplayed game must not be completed")
	}
}
