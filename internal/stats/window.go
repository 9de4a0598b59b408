package stats

import domaingames "mlb-insights-service/internal/domain/games"

// Window names a rolling tail-slice of a team's ordered history. A sized
// window degrades to the available count when the history is shorter; it
// never errors.
type Window int

const (
	WindowAll Window = iota
	WindowL15
	WindowL10
	WindowL5
)

// AverageWindows is the window set used for run averages.
var AverageWindows = []Window{WindowAll, WindowL15, WindowL10, WindowL5}

// H2HWindows is the window set used for head-to-head summaries.
var H2HWindows = []Window{WindowL10, WindowL5}

// RecordWindows is the window set used for season win-loss records.
var RecordWindows = []Window{WindowL15, WindowL10, WindowL5}

// Size returns the maximum game count for the window; 0 means unbounded.
func (w Window) Size() int {
	switch w {
	case WindowL15:
		return 15
	case WindowL10:
		return 10
	case WindowL5:
		return 5
	default:
		return 0
	}
}

// Label returns the window's display name as used in reports.
func (w Window) Label() string {
	switch w {
	case WindowL15:
		return "L15"
	case WindowL10:
		return "L10"
	case WindowL5:
		return "L5"
	default:
		return "All"
	}
}

// Tail selects the window's games from the end of an ascending history.
// Selection is always from the most recent side, never the head.
func Tail(history []domaingames.GameRecord, w Window) []domaingames.GameRecord {
	n := w.Size()
	if n == 0 || n >= len(history) {
		return history
	}
	return history[len(history)-n:]
}
