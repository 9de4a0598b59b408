package metrics

// Attribute keys shared by the otel instruments.
const (
	AttrProvider = "provider"
	AttrMatchup  = "matchup"
)
