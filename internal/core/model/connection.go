package model

// Connection is a scored, labeled edge between two entities from different
// categories. Entities are referenced by id so the ecosystem never owns
// entity lifetime or forms reference cycles; names and categories are
// carried for display.
type Connection struct {
	FromID       string   `json:"from_id"`
	ToID         string   `json:"to_id"`
	FromName     string   `json:"from_name"`
	ToName       string   `json:"to_name"`
	FromCategory string   `json:"from_category"`
	ToCategory   string   `json:"to_category"`
	Strength     float64  `json:"strength"`
	Reason       string   `json:"reason"`
	SharedThemes []string `json:"shared_themes,omitempty"`
}

// Theme is a recurring qualitative label aggregated across connections.
type Theme struct {
	Name        string   `json:"name"`
	Strength    float64  `json:"strength"`
	EntityTypes []string `json:"entity_types"`
	Examples    []string `json:"examples"`
	Description string   `json:"description"`
}
