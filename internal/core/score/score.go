// Package score computes the single coherence metric for an ecosystem.
package score

import "github.com/smereddy/vibetrail/internal/core/model"

// Component weights; they sum to 1.0 at saturation.
const (
	densityWeight   = 0.4
	themeWeight     = 0.3
	diversityWeight = 0.3

	// Floor applied when no themes exist, so one missing signal does not
	// zero the whole score.
	themeFloor = 0.15

	saturationCategories = 5
)

// Compute combines connection density, mean theme strength and category
// diversity into a score in [0,1]. Zero entities yields exactly 0.
func Compute(connections []model.Connection, themes []model.Theme, entitiesByCategory map[string][]model.Entity) float64 {
	total := 0
	categories := 0
	for _, list := range entitiesByCategory {
		if len(list) > 0 {
			categories++
		}
		total += len(list)
	}
	if total == 0 {
		return 0
	}

	maxPairs := total * (total - 1) / 2
	denominator := float64(maxPairs) / 4
	if denominator < 1 {
		denominator = 1
	}
	density := float64(len(connections)+1) / denominator
	if density > 1 {
		density = 1
	}
	density *= densityWeight

	themeStrength := themeFloor
	if len(themes) > 0 {
		sum := 0.0
		for _, theme := range themes {
			sum += theme.Strength
		}
		themeStrength = sum / float64(len(themes)) * themeWeight
	}

	diversity := float64(categories) / saturationCategories
	if diversity > 1 {
		diversity = 1
	}
	diversity *= diversityWeight

	result := density + themeStrength + diversity
	if result > 1 {
		result = 1
	}
	if result < 0 {
		result = 0
	}
	return result
}
