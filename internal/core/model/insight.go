package model

// Insight types.
const (
	InsightPattern        = "pattern"
	InsightConnection     = "connection"
	InsightRecommendation = "recommendation"
	InsightPsychological  = "psychological"
)

// Insight is a structured, ranked observation about the ecosystem, ready
// for display or narrative generation.
type Insight struct {
	Type               string   `json:"type"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Confidence         float64  `json:"confidence"`
	SupportingEntities []string `json:"supporting_entities,omitempty"`
}

// NarrativeSummary is the structured digest handed to the narrative
// collaborator in place of the full ecosystem.
type NarrativeSummary struct {
	Vibe        string   `json:"vibe"`
	Categories  []string `json:"categories"`
	Themes      []string `json:"themes"`
	Connections []string `json:"connections"`
}

// NarrativeResult is the payload the optional narrative collaborator
// returns: deeper insights plus free-form narrative text. All fields are
// optional; malformed insight records are dropped during validation.
type NarrativeResult struct {
	Insights  []Insight `json:"insights,omitempty"`
	Narrative string    `json:"narrative,omitempty"`
}
