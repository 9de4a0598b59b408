package teams

// Team represents the canonical team shape used across providers and reports.
// Kept in its own package to keep domain models modular and reusable.
type Team struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	FullName     string `json:"fullName" yaml:"full_name"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	League       string `json:"league" yaml:"league"`
	Division     string `json:"division" yaml:"division"`
	ExternalID   int    `json:"externalId" yaml:"external_id"`
}
