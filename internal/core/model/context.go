package model

// Time-of-day buckets.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeNight     = "night"
)

// Seasons.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
	SeasonWinter = "winter"
)

// VibeContext holds situational attributes inferred from the vibe text.
// The indoor/outdoor/hybrid flags are independent signals, not exclusive
// states. Never mutated after creation; empty string means "unknown" for
// TimeOfDay and Season, nil means "not detected" for EntityRelevance and
// ConfidenceScore.
type VibeContext struct {
	IsIndoor        bool               `json:"is_indoor"`
	IsOutdoor       bool               `json:"is_outdoor"`
	IsHybrid        bool               `json:"is_hybrid"`
	TimeOfDay       string             `json:"time_of_day,omitempty"`
	Season          string             `json:"season,omitempty"`
	EntityRelevance map[string]float64 `json:"entity_relevance,omitempty"`
	ConfidenceScore *float64           `json:"confidence_score,omitempty"`
}
