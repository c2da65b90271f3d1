package theme

import (
	"fmt"
	"sort"

	"github.com/smereddy/vibetrail/internal/core/model"
)

// Extractor aggregates the shared-theme labels scattered across connections
// into ranked thematic clusters.
type Extractor struct {
	MinStrength      float64
	MaxThemes        int
	FallbackStrength float64
}

func NewExtractor() *Extractor {
	return &Extractor{
		MinStrength:      0.2,
		MaxThemes:        8,
		FallbackStrength: 0.6,
	}
}

// Extract sums connection strength per theme label and keeps labels above
// the floor, strongest first. When discovery produced no labeled overlap at
// all, it synthesizes one "<category> preferences" theme per non-empty
// category so the result is never empty while entities exist.
func (x *Extractor) Extract(entitiesByCategory map[string][]model.Entity, connections []model.Connection, vibe string) []model.Theme {
	strengths := make(map[string]float64)
	categories := make(map[string]map[string]bool)
	examples := make(map[string][]string)

	for _, conn := range connections {
		for _, label := range conn.SharedThemes {
			strengths[label] += conn.Strength
			if categories[label] == nil {
				categories[label] = make(map[string]bool)
			}
			categories[label][conn.FromCategory] = true
			categories[label][conn.ToCategory] = true
			examples[label] = appendUnique(examples[label], conn.FromName)
			examples[label] = appendUnique(examples[label], conn.ToName)
		}
	}

	var themes []model.Theme
	for label, strength := range strengths {
		if strength <= x.MinStrength {
			continue
		}
		if strength > 1 {
			strength = 1
		}
		themes = append(themes, model.Theme{
			Name:        label,
			Strength:    strength,
			EntityTypes: sortedKeys(categories[label]),
			Examples:    examples[label],
			Description: fmt.Sprintf("A %q thread runs through these recommendations", label),
		})
	}

	sort.SliceStable(themes, func(i, j int) bool {
		if themes[i].Strength != themes[j].Strength {
			return themes[i].Strength > themes[j].Strength
		}
		return themes[i].Name < themes[j].Name
	})
	if len(themes) > x.MaxThemes {
		themes = themes[:x.MaxThemes]
	}

	if len(themes) == 0 {
		themes = x.fallbackThemes(entitiesByCategory)
	}
	return themes
}

func (x *Extractor) fallbackThemes(entitiesByCategory map[string][]model.Entity) []model.Theme {
	keys := make([]string, 0, len(entitiesByCategory))
	for key, list := range entitiesByCategory {
		if len(list) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var themes []model.Theme
	for _, key := range keys {
		names := make([]string, 0, 3)
		for _, entity := range entitiesByCategory[key] {
			names = append(names, entity.Name)
			if len(names) == 3 {
				break
			}
		}
		themes = append(themes, model.Theme{
			Name:        fmt.Sprintf("%s preferences", key),
			Strength:    x.FallbackStrength,
			EntityTypes: []string{key},
			Examples:    names,
			Description: fmt.Sprintf("Your picks show a consistent taste in %s", key),
		})
	}
	return themes
}

func appendUnique(list []string, name string) []string {
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	return append(list, name)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
