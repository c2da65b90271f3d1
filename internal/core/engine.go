package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smereddy/vibetrail/internal/core/connection"
	"github.com/smereddy/vibetrail/internal/core/insight"
	"github.com/smereddy/vibetrail/internal/core/model"
	"github.com/smereddy/vibetrail/internal/core/score"
	"github.com/smereddy/vibetrail/internal/core/tabs"
	"github.com/smereddy/vibetrail/internal/core/theme"
)

// ErrNoEntities marks the condition where every category fetch came back
// empty. BuildEcosystem still returns a minimal ecosystem in that case;
// the sentinel exists for callers that want to distinguish it.
var ErrNoEntities = errors.New("no entities fetched for any category")

// Fetcher is the candidate-retrieval collaborator. A failed fetch for one
// category never aborts the others.
type Fetcher interface {
	Fetch(ctx context.Context, category, location string, queryTags []string, seeds []model.ExtractedSeed, limit int) ([]model.Entity, error)
}

// Narrator is the optional narrative collaborator.
type Narrator interface {
	GenerateNarrative(ctx context.Context, summary model.NarrativeSummary) (*model.NarrativeResult, error)
}

// Engine assembles a cultural ecosystem from a vibe: it prioritizes
// categories, fans out candidate fetches, then runs the pure discovery,
// theming, scoring and insight steps over whatever came back.
type Engine struct {
	Fetcher     Fetcher
	Narrator    Narrator // nil disables narrative generation
	Prioritizer *tabs.Prioritizer
	Discoverer  *connection.Discoverer
	Themes      *theme.Extractor
	Insights    *insight.Synthesizer

	NarrativeTimeout time.Duration
}

func NewEngine(fetcher Fetcher, narrator Narrator) *Engine {
	return &Engine{
		Fetcher:          fetcher,
		Narrator:         narrator,
		Prioritizer:      tabs.NewPrioritizer(),
		Discoverer:       connection.NewDiscoverer(),
		Themes:           theme.NewExtractor(),
		Insights:         insight.NewSynthesizer(),
		NarrativeTimeout: 15 * time.Second,
	}
}

// BuildRequest carries one vibe submission. Context and Seeds come from the
// extraction step and are read-only here.
type BuildRequest struct {
	Vibe     string
	Location string
	Context  model.VibeContext
	Seeds    []model.ExtractedSeed
}

// BuildEcosystem runs the full pipeline. It returns an error only on
// collaborator contract violations (malformed entities); collaborator
// failures degrade the result instead.
func (e *Engine) BuildEcosystem(ctx context.Context, req BuildRequest) (*model.Ecosystem, error) {
	selected := e.Prioritizer.ComputeTabs(req.Context)

	// Fan-out: one fetch per tab, each goroutine owning its own result
	// slot, joined before discovery.
	results := make([][]model.Entity, len(selected))
	var wg sync.WaitGroup
	for i, tab := range selected {
		wg.Add(1)
		go func(i int, tab model.TabConfig) {
			defer wg.Done()
			entities, err := e.Fetcher.Fetch(ctx, tab.Key, req.Location, tabs.QueryTags(tab.Key), req.Seeds, tab.EstimatedCount)
			if err != nil {
				log.Printf("fetch failed for category %s: %v", tab.Key, err)
				return
			}
			results[i] = entities
		}(i, tab)
	}
	wg.Wait()

	entitiesByCategory := make(map[string][]model.Entity, len(selected))
	total := 0
	for i, tab := range selected {
		normalized, err := normalizeEntities(tab.Key, results[i])
		if err != nil {
			return nil, err
		}
		entitiesByCategory[tab.Key] = normalized
		total += len(normalized)
	}

	if total == 0 {
		return e.minimalEcosystem(req, entitiesByCategory), nil
	}

	connections := e.Discoverer.Discover(entitiesByCategory, req.Seeds)
	themes := e.Themes.Extract(entitiesByCategory, connections, req.Vibe)
	ecosystemScore := score.Compute(connections, themes, entitiesByCategory)

	var external []model.Insight
	narrative := ""
	if e.Narrator != nil {
		nctx, cancel := context.WithTimeout(ctx, e.NarrativeTimeout)
		result, err := e.Narrator.GenerateNarrative(nctx, summarize(req.Vibe, entitiesByCategory, themes, connections))
		cancel()
		if err != nil {
			log.Printf("narrative generation failed: %v", err)
		} else if result != nil {
			external = insight.ValidateExternal(result.Insights)
			narrative = result.Narrative
		}
	}

	insights := e.Insights.Synthesize(req.Vibe, entitiesByCategory, connections, themes, external)

	return &model.Ecosystem{
		CoreVibe:     req.Vibe,
		PrimarySeeds: req.Seeds,
		Entities:     entitiesByCategory,
		Connections:  connections,
		Themes:       themes,
		Score:        ecosystemScore,
		Insights:     insights,
		Narrative:    narrative,
	}, nil
}

// normalizeEntities enforces the fetch collaborator contract: categories
// must be present (contract violation otherwise), missing ids get minted,
// descriptions stay empty strings rather than being special-cased later.
func normalizeEntities(category string, entities []model.Entity) ([]model.Entity, error) {
	normalized := make([]model.Entity, 0, len(entities))
	for _, entity := range entities {
		if entity.Category == "" {
			return nil, fmt.Errorf("fetched entity %q for category %s has no category", entity.Name, category)
		}
		if entity.ID == "" {
			entity.ID = uuid.New().String()
		}
		normalized = append(normalized, entity)
	}
	return normalized, nil
}

// minimalEcosystem is the EmptyInputFailure path: still a structurally
// valid result, flagged by a single low-confidence insight.
func (e *Engine) minimalEcosystem(req BuildRequest, entitiesByCategory map[string][]model.Entity) *model.Ecosystem {
	return &model.Ecosystem{
		CoreVibe:     req.Vibe,
		PrimarySeeds: req.Seeds,
		Entities:     entitiesByCategory,
		Connections:  []model.Connection{},
		Themes:       []model.Theme{},
		Score:        0,
		Insights: []model.Insight{{
			Type:        model.InsightRecommendation,
			Title:       "Not enough to go on yet",
			Description: "No recommendations came back for this vibe. Try adding a concrete detail, like a food, a mood, or a neighborhood.",
			Confidence:  0.2,
		}},
	}
}

func summarize(vibe string, entitiesByCategory map[string][]model.Entity, themes []model.Theme, connections []model.Connection) model.NarrativeSummary {
	summary := model.NarrativeSummary{Vibe: vibe}
	for key, list := range entitiesByCategory {
		if len(list) > 0 {
			summary.Categories = append(summary.Categories, key)
		}
	}
	sort.Strings(summary.Categories)

	for i, t := range themes {
		if i == 3 {
			break
		}
		summary.Themes = append(summary.Themes, t.Name)
	}
	for i, c := range connections {
		if i == 3 {
			break
		}
		summary.Connections = append(summary.Connections, fmt.Sprintf("%s to %s (%s)", c.FromName, c.ToName, c.Reason))
	}
	return summary
}
