package stats

import domaingames "mlb-insights-service/internal/domain/games"

// RunTally is the averaged scoring line for a team over one window.
// Games == 0 means the window held no games; the averages are then
// meaningless and must render as a "no data" sentinel, never as zero.
type RunTally struct {
	Games       int
	RunsFor     float64
	RunsAgainst float64
}

// HasData reports whether the window held at least one game.
func (t RunTally) HasData() bool {
	return t.Games > 0
}

// Total returns the combined runs-per-game average for the window.
func (t RunTally) Total() float64 {
	return t.RunsFor + t.RunsAgainst
}

// TallySet holds one RunTally per rolling window.
type TallySet map[Window]RunTally

// ComputeRunTallies computes the team's run averages for every window in
// AverageWindows. The history must be ascending by date; the team's runs in
// each game are attributed by home/away side.
func ComputeRunTallies(teamID string, history []domaingames.GameRecord) TallySet {
	set := make(TallySet, len(AverageWindows))
	for _, w := range AverageWindows {
		set[w] = tallyWindow(teamID, Tail(history, w))
	}
	return set
}

func tallyWindow(teamID string, window []domaingames.GameRecord) RunTally {
	if len(window) == 0 {
		return RunTally{}
	}

	var runsFor, runsAgainst int
	for _, g := range window {
		runsFor += g.RunsFor(teamID)
		runsAgainst += g.RunsAgainst(teamID)
	}
	n := float64(len(window))
	return RunTally{
		Games:       len(window),
		RunsFor:     float64(runsFor) / n,
		RunsAgainst: float64(runsAgainst) / n,
	}
}
