package connection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smereddy/vibetrail/internal/core/model"
)

// Scoring increments. Kept as one block so the relative weighting of the
// heuristics stays visible.
const (
	keywordBonus   = 0.15
	seedBonus      = 0.2
	genreBonus     = 0.25
	nameTokenBonus = 0.15
	locationBonus  = 0.1
	baselineScore  = 0.35
)

// Discoverer computes pairwise connections between entities of different
// categories. Pure given its inputs; cost is bounded by sampling at most
// MaxPerCategory entities from each category.
type Discoverer struct {
	MaxPerCategory int
	MinStrength    float64
	MaxConnections int
}

func NewDiscoverer() *Discoverer {
	return &Discoverer{
		MaxPerCategory: 3,
		MinStrength:    0.3,
		MaxConnections: 20,
	}
}

// Discover evaluates every sampled cross-category entity pair, scores it,
// filters below MinStrength and returns at most MaxConnections edges sorted
// by descending strength. Intra-category pairs are never evaluated.
func (d *Discoverer) Discover(entitiesByCategory map[string][]model.Entity, seeds []model.ExtractedSeed) []model.Connection {
	categories := make([]string, 0, len(entitiesByCategory))
	for key := range entitiesByCategory {
		categories = append(categories, key)
	}
	sort.Strings(categories) // map order must not leak into results

	var connections []model.Connection
	for i := 0; i < len(categories); i++ {
		for j := i + 1; j < len(categories); j++ {
			left := sample(entitiesByCategory[categories[i]], d.MaxPerCategory)
			right := sample(entitiesByCategory[categories[j]], d.MaxPerCategory)

			for _, e1 := range left {
				for _, e2 := range right {
					conn := d.connect(e1, e2, seeds)
					if conn.Strength >= d.MinStrength {
						connections = append(connections, conn)
					}
				}
			}
		}
	}

	sort.SliceStable(connections, func(i, j int) bool {
		return connections[i].Strength > connections[j].Strength
	})
	if len(connections) > d.MaxConnections {
		connections = connections[:d.MaxConnections]
	}
	return connections
}

func (d *Discoverer) connect(e1, e2 model.Entity, seeds []model.ExtractedSeed) model.Connection {
	d1 := strings.ToLower(e1.Description)
	d2 := strings.ToLower(e2.Description)

	strength := 0.0
	reason := ""
	var themes []string

	// Shared cultural vocabulary.
	for _, kw := range culturalKeywords {
		if strings.Contains(d1, kw) && strings.Contains(d2, kw) {
			strength += keywordBonus
			themes = append(themes, kw)
		}
	}

	// A seed phrase literally present in both descriptions is a strong
	// signal that both items came from the same taste thread.
	for _, seed := range seeds {
		text := strings.ToLower(seed.Text)
		if text != "" && strings.Contains(d1, text) && strings.Contains(d2, text) {
			strength += seedBonus
			themes = append(themes, seed.Text)
			if reason == "" {
				reason = fmt.Sprintf("Both match your interest in %s", seed.Text)
			}
		}
	}

	// Genre synonym groups.
	for _, group := range genreGroups {
		if matchesGroup(d1, group) && matchesGroup(d2, group) {
			strength += genreBonus
			themes = append(themes, group.name)
			reason = fmt.Sprintf("%s and %s share a %s sensibility", e1.Name, e2.Name, group.name)
			break
		}
	}

	// Shared name tokens longer than 3 characters.
	for _, token := range sharedNameTokens(e1.Name, e2.Name) {
		strength += nameTokenBonus
		themes = append(themes, token)
		if reason == "" {
			reason = fmt.Sprintf("Both carry %q in their name", token)
		}
	}

	// Shared neighborhood markers in both locations.
	if e1.Location != "" && e2.Location != "" {
		l1 := strings.ToLower(e1.Location)
		l2 := strings.ToLower(e2.Location)
		for _, area := range neighborhoodKeywords {
			if strings.Contains(l1, area) && strings.Contains(l2, area) {
				strength += locationBonus
				themes = append(themes, area)
				break
			}
		}
	}

	// Guaranteed baseline: an evaluated pair is never silently dropped
	// before thresholding, it just connects weakly through the user's
	// overall taste.
	if strength == 0 {
		strength = baselineScore
		reason = baselineReason(seeds)
	}

	if strength > 1 {
		strength = 1
	}
	if reason == "" {
		reason = fmt.Sprintf("%s and %s share themes: %s", e1.Name, e2.Name, strings.Join(themes, ", "))
	}

	return model.Connection{
		FromID:       e1.ID,
		ToID:         e2.ID,
		FromName:     e1.Name,
		ToName:       e2.Name,
		FromCategory: e1.Category,
		ToCategory:   e2.Category,
		Strength:     strength,
		Reason:       reason,
		SharedThemes: dedupe(themes),
	}
}

func sample(entities []model.Entity, max int) []model.Entity {
	if len(entities) > max {
		return entities[:max]
	}
	return entities
}

func matchesGroup(description string, group genreGroup) bool {
	for _, member := range group.members {
		if strings.Contains(description, member) {
			return true
		}
	}
	return false
}

func sharedNameTokens(n1, n2 string) []string {
	seen := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(n1)) {
		if len(token) > 3 {
			seen[token] = true
		}
	}
	var shared []string
	for _, token := range strings.Fields(strings.ToLower(n2)) {
		if len(token) > 3 && seen[token] {
			shared = append(shared, token)
			seen[token] = false
		}
	}
	sort.Strings(shared)
	return shared
}

func baselineReason(seeds []model.ExtractedSeed) string {
	if len(seeds) > 0 {
		return fmt.Sprintf("Both align with your taste around %s", seeds[0].Text)
	}
	return "Both align with your overall taste profile"
}

func dedupe(themes []string) []string {
	seen := make(map[string]bool, len(themes))
	var out []string
	for _, theme := range themes {
		if !seen[theme] {
			seen[theme] = true
			out = append(out, theme)
		}
	}
	return out
}
