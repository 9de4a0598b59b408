package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SeasonStart returns March 1st of the season containing t.
// Games before March belong to the previous calendar year's season window.
func SeasonStart(t time.Time) time.Time {
	year := t.Year()
	if t.Month() < time.March {
		year--
	}
	return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
}
