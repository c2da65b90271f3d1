package model

// Seed categories, as classified by the extraction collaborator.
const (
	SeedFood     = "food"
	SeedActivity = "activity"
	SeedMedia    = "media"
	SeedGeneral  = "general"
)

// ExtractedSeed is a concrete, searchable phrase pulled out of the user's
// vibe text. Immutable once produced.
type ExtractedSeed struct {
	Text        string   `json:"text"`
	Category    string   `json:"category"`
	Confidence  float64  `json:"confidence"`
	SearchTerms []string `json:"search_terms,omitempty"`
}
