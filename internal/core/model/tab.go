package model

// CategoryConfig is one row of the static category table: display metadata
// plus the configured base priority and the tags sent to the recommendation
// provider when this category is fetched.
type CategoryConfig struct {
	Key          string   `json:"key"`
	DisplayName  string   `json:"display_name"`
	Icon         string   `json:"icon"`
	BasePriority int      `json:"base_priority"`
	QueryTags    []string `json:"query_tags"`
}

// TabConfig is one ranked, weighted category selected for a request.
// Exactly one entry in a prioritizer result has IsActive set, and it is the
// entry with the maximum Priority.
type TabConfig struct {
	ID             string  `json:"id"`
	Key            string  `json:"key"`
	DisplayName    string  `json:"display_name"`
	Icon           string  `json:"icon"`
	Priority       float64 `json:"priority"`
	IsActive       bool    `json:"is_active"`
	EstimatedCount int     `json:"estimated_count"`
}
