package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/smereddy/vibetrail/internal/core/model"
)

type mockLLM struct {
	Response string
	Err      error
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func TestExtract_ParsesCollaboratorJSON(t *testing.T) {
	mock := &mockLLM{Response: `{
		"seeds": [
			{"text": "craft cocktails", "category": "food", "confidence": 0.9, "search_terms": ["cocktail bar"]},
			{"text": "live jazz", "category": "activity", "confidence": 0.85, "search_terms": ["jazz club"]}
		],
		"context": {
			"is_indoor": true,
			"time_of_day": "evening",
			"entity_relevance": {"place": 0.9, "artist": 0.7},
			"confidence_score": 0.8
		}
	}`}

	seeds, vibeCtx, err := NewExtractor(mock, "").Extract(context.Background(), "cocktails and live jazz tonight")

	assert.NoError(t, err)
	assert.Len(t, seeds, 2)
	assert.Equal(t, "craft cocktails", seeds[0].Text)
	assert.Equal(t, model.SeedFood, seeds[0].Category)
	assert.True(t, vibeCtx.IsIndoor)
	assert.Equal(t, model.TimeEvening, vibeCtx.TimeOfDay)
	assert.InDelta(t, 0.9, vibeCtx.EntityRelevance[model.CategoryPlace], 1e-9)
	if assert.NotNil(t, vibeCtx.ConfidenceScore) {
		assert.InDelta(t, 0.8, *vibeCtx.ConfidenceScore, 1e-9)
	}
}

func TestExtract_InvalidCategoryNormalized(t *testing.T) {
	mock := &mockLLM{Response: `{"seeds": [{"text": "x", "category": "unknown", "confidence": 2.0}], "context": {}}`}

	seeds, _, err := NewExtractor(mock, "").Extract(context.Background(), "whatever")

	assert.NoError(t, err)
	assert.Equal(t, model.SeedGeneral, seeds[0].Category)
	assert.Equal(t, 1.0, seeds[0].Confidence)
}

func TestExtract_FallsBackOnGarbage(t *testing.T) {
	mock := &mockLLM{Response: "I could not produce JSON, sorry!"}

	seeds, vibeCtx, err := NewExtractor(mock, "").Extract(context.Background(), "cozy coffee morning with a good book")

	assert.NoError(t, err)
	assert.NotEmpty(t, seeds)
	assert.True(t, vibeCtx.IsIndoor)
	assert.Equal(t, model.TimeMorning, vibeCtx.TimeOfDay)
}

func TestExtract_HeuristicsWithoutCollaborator(t *testing.T) {
	seeds, vibeCtx, err := NewExtractor(nil, "").Extract(context.Background(), "coffee and hiking this summer")

	assert.NoError(t, err)

	var texts []string
	for _, s := range seeds {
		texts = append(texts, s.Text)
	}
	assert.Contains(t, texts, "coffee")
	assert.Contains(t, texts, "hiking")
	assert.True(t, vibeCtx.IsOutdoor)
	assert.Equal(t, model.SeasonSummer, vibeCtx.Season)
	if assert.NotNil(t, vibeCtx.ConfidenceScore) {
		assert.InDelta(t, 0.4, *vibeCtx.ConfidenceScore, 1e-9)
	}
}

func TestExtract_NeverZeroSeeds(t *testing.T) {
	seeds, _, err := NewExtractor(nil, "").Extract(context.Background(), "zzz qqq unmatched words")

	assert.NoError(t, err)
	assert.Len(t, seeds, 1)
	assert.Equal(t, model.SeedGeneral, seeds[0].Category)
	assert.Equal(t, "zzz qqq unmatched words", seeds[0].Text)
}

func TestExtract_EmptyVibe(t *testing.T) {
	_, _, err := NewExtractor(nil, "").Extract(context.Background(), "   ")
	assert.Error(t, err)
}
