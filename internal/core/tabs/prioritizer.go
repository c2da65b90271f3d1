package tabs

import (
	"fmt"
	"sort"

	"github.com/smereddy/vibetrail/internal/core/model"
)

// Prioritizer ranks content categories for a given vibe context. Pure and
// deterministic: identical contexts always produce identical tabs.
type Prioritizer struct {
	Categories []model.CategoryConfig
}

func NewPrioritizer() *Prioritizer {
	return &Prioritizer{Categories: Categories}
}

const (
	maxScore        = 2.0
	tabsWithContext = 5
	tabsDefault     = 3
	minEstimate     = 3
	maxEstimate     = 20
)

// ComputeTabs scores every configured category against the context, keeps
// the top 5 when entity relevance was supplied (top 3 otherwise) and marks
// the single highest-scoring tab active. Ties keep configuration order.
func (p *Prioritizer) ComputeTabs(ctx model.VibeContext) []model.TabConfig {
	type scored struct {
		cfg   model.CategoryConfig
		score float64
		order int
	}

	ranked := make([]scored, 0, len(p.Categories))
	for i, cfg := range p.Categories {
		ranked = append(ranked, scored{cfg: cfg, score: p.scoreCategory(cfg, ctx), order: i})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	keep := tabsDefault
	if len(ctx.EntityRelevance) > 0 {
		keep = tabsWithContext
	}
	if keep > len(ranked) {
		keep = len(ranked)
	}

	result := make([]model.TabConfig, 0, keep)
	for i := 0; i < keep; i++ {
		cfg := ranked[i].cfg
		result = append(result, model.TabConfig{
			ID:             fmt.Sprintf("tab-%s", cfg.Key),
			Key:            cfg.Key,
			DisplayName:    cfg.DisplayName,
			Icon:           cfg.Icon,
			Priority:       ranked[i].score,
			IsActive:       i == 0,
			EstimatedCount: estimateCount(cfg.Key, ctx),
		})
	}
	return result
}

func (p *Prioritizer) scoreCategory(cfg model.CategoryConfig, ctx model.VibeContext) float64 {
	score := float64(cfg.BasePriority) / 10

	// Relevance contributes at most 0.5 even at full confidence.
	if rel, ok := ctx.EntityRelevance[cfg.Key]; ok {
		score += rel * 0.5
	}

	if ctx.IsIndoor {
		score += indoorBoosts[cfg.Key]
	}
	if ctx.IsOutdoor {
		score += outdoorBoosts[cfg.Key]
	}
	if ctx.IsHybrid {
		score += hybridBoosts[cfg.Key]
	}

	if ctx.TimeOfDay != "" {
		score += timeOfDayBoosts[cfg.Key][ctx.TimeOfDay]
	}
	if ctx.Season != "" {
		score += seasonBoosts[cfg.Key][ctx.Season]
	}

	// Low-confidence detection pulls every score toward a neutral midpoint
	// instead of amplifying noisy boosts.
	if ctx.ConfidenceScore != nil {
		score *= 0.5 + *ctx.ConfidenceScore*0.5
	}

	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

func estimateCount(key string, ctx model.VibeContext) int {
	count := float64(baseEstimates[key])
	if rel, ok := ctx.EntityRelevance[key]; ok {
		count *= 0.5 + rel*0.5
	}
	n := int(count)
	if n < minEstimate {
		n = minEstimate
	}
	if n > maxEstimate {
		n = maxEstimate
	}
	return n
}
