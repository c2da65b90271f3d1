package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smereddy/vibetrail/internal/core/model"
)

// Synthesizer turns themes, connections and category diversity into a small
// ordered set of display-ready insights. Pure given its inputs.
type Synthesizer struct{}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize always emits the diversity profile first and the coherence
// reading last, with theme and connection insights between them when the
// data supports them. Validated external insights are appended verbatim.
func (s *Synthesizer) Synthesize(vibe string, entitiesByCategory map[string][]model.Entity, connections []model.Connection, themes []model.Theme, external []model.Insight) []model.Insight {
	categories := nonEmptyCategories(entitiesByCategory)
	total := 0
	for _, list := range entitiesByCategory {
		total += len(list)
	}

	var insights []model.Insight

	insights = append(insights, model.Insight{
		Type:  model.InsightPattern,
		Title: fmt.Sprintf("A taste profile across %d domains", len(categories)),
		Description: fmt.Sprintf("Your vibe surfaced %d recommendations spanning %s.",
			total, strings.Join(categories, ", ")),
		Confidence:         0.8,
		SupportingEntities: leadingNames(entitiesByCategory, categories),
	})

	if len(themes) > 0 {
		top := themes[0]
		insights = append(insights, model.Insight{
			Type:               model.InsightPattern,
			Title:              fmt.Sprintf("%q is your dominant theme", top.Name),
			Description:        top.Description,
			Confidence:         top.Strength,
			SupportingEntities: top.Examples,
		})
	}

	if len(connections) > 0 {
		bridge := connections[0]
		insights = append(insights, model.Insight{
			Type:               model.InsightConnection,
			Title:              fmt.Sprintf("%s bridges into %s", bridge.FromName, bridge.ToName),
			Description:        bridge.Reason,
			Confidence:         bridge.Strength,
			SupportingEntities: []string{bridge.FromName, bridge.ToName},
		})
	} else if len(categories) >= 2 {
		insights = append(insights, model.Insight{
			Type:  model.InsightConnection,
			Title: "Emerging connections",
			Description: "These domains have not linked up strongly yet, but together " +
				"they sketch a taste still taking shape.",
			Confidence: 0.6,
		})
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(len(connections)) / float64(total)
	}
	coherence := model.Insight{
		Type:       model.InsightPsychological,
		Confidence: minFloat(ratio*2, 1.0),
	}
	if ratio > 0.3 {
		coherence.Title = "A highly coherent cultural ecosystem"
		coherence.Description = "Your recommendations reinforce one another, the mark of a sharply defined taste."
	} else {
		coherence.Title = "A diverse exploration"
		coherence.Description = "Your recommendations range widely, the mark of a taste that likes to roam."
	}
	insights = append(insights, coherence)

	return append(insights, external...)
}

// ValidateExternal drops collaborator insights missing required fields and
// clamps confidence into [0,1].
func ValidateExternal(insights []model.Insight) []model.Insight {
	var valid []model.Insight
	for _, ins := range insights {
		if ins.Title == "" || ins.Description == "" {
			continue
		}
		if ins.Type == "" {
			ins.Type = model.InsightPattern
		}
		if ins.Confidence < 0 {
			ins.Confidence = 0
		}
		if ins.Confidence > 1 {
			ins.Confidence = 1
		}
		valid = append(valid, ins)
	}
	return valid
}

func nonEmptyCategories(entitiesByCategory map[string][]model.Entity) []string {
	var keys []string
	for key, list := range entitiesByCategory {
		if len(list) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func leadingNames(entitiesByCategory map[string][]model.Entity, categories []string) []string {
	var names []string
	for _, key := range categories {
		names = append(names, entitiesByCategory[key][0].Name)
	}
	return names
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
