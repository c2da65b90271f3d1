package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/smereddy/vibetrail/internal/core/model"
)

func jazzFetcher() *MockFetcher {
	return &MockFetcher{
		EntitiesByCategory: map[string][]model.Entity{
			model.CategoryPlace: {
				{ID: "p1", Name: "Jazz Lounge", Category: model.CategoryPlace,
					Description: "intimate jazz club with craft cocktails", Location: "downtown"},
			},
			model.CategoryArtist: {
				{ID: "a1", Name: "Jazz Quartet", Category: model.CategoryArtist,
					Description: "live jazz performances", Location: "downtown theater"},
			},
		},
	}
}

func jazzRequest() BuildRequest {
	return BuildRequest{
		Vibe:     "late night jazz and cocktails",
		Location: "New Orleans",
		Context: model.VibeContext{
			IsIndoor:  true,
			TimeOfDay: model.TimeNight,
			EntityRelevance: map[string]float64{
				model.CategoryPlace:  0.9,
				model.CategoryArtist: 0.8,
			},
		},
		Seeds: []model.ExtractedSeed{
			{Text: "jazz", Category: model.SeedActivity, Confidence: 0.9, SearchTerms: []string{"jazz club"}},
		},
	}
}

func TestBuildEcosystem_EndToEnd(t *testing.T) {
	engine := NewEngine(jazzFetcher(), nil)

	eco, err := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.NoError(t, err)
	assert.NotNil(t, eco)
	assert.Equal(t, "late night jazz and cocktails", eco.CoreVibe)

	// The two jazz entities connect across categories.
	assert.NotEmpty(t, eco.Connections)
	assert.Greater(t, eco.Connections[0].Strength, 0.3)
	assert.NotEqual(t, eco.Connections[0].FromCategory, eco.Connections[0].ToCategory)

	assert.NotEmpty(t, eco.Themes)
	assert.Greater(t, eco.Score, 0.0)
	assert.LessOrEqual(t, eco.Score, 1.0)
	assert.GreaterOrEqual(t, len(eco.Insights), 3)
	assert.Empty(t, eco.Narrative)
}

func TestBuildEcosystem_Deterministic(t *testing.T) {
	engine := NewEngine(jazzFetcher(), nil)

	first, err1 := engine.BuildEcosystem(context.Background(), jazzRequest())
	second, err2 := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first.Connections, second.Connections)
	assert.Equal(t, first.Themes, second.Themes)
	assert.Equal(t, first.Score, second.Score)
}

func TestBuildEcosystem_AllFetchesEmpty(t *testing.T) {
	engine := NewEngine(&MockFetcher{}, nil)

	eco, err := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.NoError(t, err)
	assert.NotNil(t, eco)
	assert.Empty(t, eco.Connections)
	assert.Equal(t, 0.0, eco.Score)
	assert.Len(t, eco.Insights, 1)
	assert.LessOrEqual(t, eco.Insights[0].Confidence, 0.3)
}

func TestBuildEcosystem_FetchFailureTolerated(t *testing.T) {
	fetcher := jazzFetcher()
	fetcher.FailCategories = map[string]bool{model.CategoryArtist: true}
	engine := NewEngine(fetcher, nil)

	eco, err := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.NoError(t, err)
	assert.Empty(t, eco.Entities[model.CategoryArtist])
	assert.NotEmpty(t, eco.Entities[model.CategoryPlace])
	// Only one populated category remains, so no cross-category pairs.
	assert.Empty(t, eco.Connections)
	assert.NotEmpty(t, eco.Themes) // fallback themes still fire
}

func TestBuildEcosystem_NarratorFailureTolerated(t *testing.T) {
	engine := NewEngine(jazzFetcher(), &MockNarrator{Err: fmt.Errorf("model overloaded")})

	eco, err := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.NoError(t, err)
	assert.Empty(t, eco.Narrative)
	assert.NotEmpty(t, eco.Insights)
}

func TestBuildEcosystem_NarratorMerged(t *testing.T) {
	narrator := &MockNarrator{Result: &model.NarrativeResult{
		Narrative: "A night built around jazz.",
		Insights: []model.Insight{
			{Type: model.InsightPsychological, Title: "Night owl", Description: "You come alive after dark", Confidence: 0.7},
			{Title: "", Description: "malformed, dropped"},
		},
	}}
	engine := NewEngine(jazzFetcher(), narrator)

	eco, err := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.NoError(t, err)
	assert.Equal(t, "A night built around jazz.", eco.Narrative)

	last := eco.Insights[len(eco.Insights)-1]
	assert.Equal(t, "Night owl", last.Title)

	for _, ins := range eco.Insights {
		assert.NotEmpty(t, ins.Title)
	}
}

func TestBuildEcosystem_MalformedEntityFailsFast(t *testing.T) {
	fetcher := &MockFetcher{
		EntitiesByCategory: map[string][]model.Entity{
			model.CategoryPlace: {{ID: "p1", Name: "No Category"}},
		},
	}
	engine := NewEngine(fetcher, nil)

	_, err := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no category")
}

func TestBuildEcosystem_FansOutToSelectedTabs(t *testing.T) {
	fetcher := jazzFetcher()
	engine := NewEngine(fetcher, nil)

	_, err := engine.BuildEcosystem(context.Background(), jazzRequest())

	assert.NoError(t, err)
	// Relevance was supplied, so five categories are fetched concurrently.
	assert.Len(t, fetcher.Calls, 5)
	assert.Contains(t, fetcher.Calls, model.CategoryPlace)
	assert.Contains(t, fetcher.Calls, model.CategoryArtist)
}
