package model

// Ecosystem is the top-level result of processing one vibe: entities grouped
// by category, the scored connection graph between them, aggregated themes,
// a single coherence score and the synthesized insights. Built once per
// request and immutable afterwards; nothing is persisted.
type Ecosystem struct {
	CoreVibe     string              `json:"core_vibe"`
	PrimarySeeds []ExtractedSeed     `json:"primary_seeds"`
	Entities     map[string][]Entity `json:"entities"`
	Connections  []Connection        `json:"connections"`
	Themes       []Theme             `json:"themes"`
	Score        float64             `json:"score"`
	Insights     []Insight           `json:"insights"`
	Narrative    string              `json:"narrative,omitempty"`
}

// TotalEntities counts entities across all categories.
func (e *Ecosystem) TotalEntities() int {
	total := 0
	for _, list := range e.Entities {
		total += len(list)
	}
	return total
}
