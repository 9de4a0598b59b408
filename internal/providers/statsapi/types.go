package statsapi

// ProviderName labels this provider in logs, metrics, and game ids.
const ProviderName = "statsapi"

type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk       int            `json:"gamePk"`
	GameDate     string         `json:"gameDate"`
	DoubleHeader string         `json:"doubleHeader"`
	GameNumber   int            `json:"gameNumber"`
	Status       statusResponse `json:"status"`
	Teams        struct {
		Home sideResponse `json:"home"`
		Away sideResponse `json:"away"`
	} `json:"teams"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type sideResponse struct {
	Score *int `json:"score,omitempty"`
	Team  struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}
