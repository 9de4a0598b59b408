package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 15 * time.Second
	// sportId=1 selects MLB in the Stats API.
	sportID = 1
)
