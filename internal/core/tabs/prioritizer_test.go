package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/smereddy/vibetrail/internal/core/model"
)

func indexOf(tabs []model.TabConfig, key string) int {
	for i, tab := range tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

func TestComputeTabs_EmptyContext(t *testing.T) {
	p := NewPrioritizer()
	result := p.ComputeTabs(model.VibeContext{})

	// No relevance map means the safe default of 3 tabs, ranked purely by
	// base priority, so place leads.
	assert.Len(t, result, 3)
	assert.Equal(t, model.CategoryPlace, result[0].Key)
	assert.True(t, result[0].IsActive)

	active := 0
	for _, tab := range result {
		if tab.IsActive {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestComputeTabs_IndoorReadingVibe(t *testing.T) {
	p := NewPrioritizer()
	result := p.ComputeTabs(model.VibeContext{
		IsIndoor: true,
		EntityRelevance: map[string]float64{
			model.CategoryBook:  0.9,
			model.CategoryPlace: 0.5,
		},
	})

	assert.Len(t, result, 5)

	bookIdx := indexOf(result, model.CategoryBook)
	destIdx := indexOf(result, model.CategoryDestination)
	placeIdx := indexOf(result, model.CategoryPlace)

	// The indoor skew plus high relevance pushes books over the
	// outdoor-leaning destinations, but place keeps its slot on base
	// priority alone.
	assert.NotEqual(t, -1, bookIdx)
	assert.NotEqual(t, -1, placeIdx)
	if destIdx != -1 {
		assert.Less(t, bookIdx, destIdx)
	}

	// Active tab is the maximum-priority one.
	assert.True(t, result[0].IsActive)
	for _, tab := range result[1:] {
		assert.False(t, tab.IsActive)
		assert.LessOrEqual(t, tab.Priority, result[0].Priority)
	}
}

func TestComputeTabs_ScoresClamped(t *testing.T) {
	p := NewPrioritizer()
	conf := 1.0
	result := p.ComputeTabs(model.VibeContext{
		IsIndoor:  true,
		IsOutdoor: true,
		IsHybrid:  true,
		TimeOfDay: model.TimeEvening,
		Season:    model.SeasonSummer,
		EntityRelevance: map[string]float64{
			model.CategoryPlace:       1.0,
			model.CategoryDestination: 1.0,
			model.CategoryArtist:      1.0,
		},
		ConfidenceScore: &conf,
	})

	for _, tab := range result {
		assert.GreaterOrEqual(t, tab.Priority, 0.0)
		assert.LessOrEqual(t, tab.Priority, 2.0)
		assert.GreaterOrEqual(t, tab.EstimatedCount, 3)
		assert.LessOrEqual(t, tab.EstimatedCount, 20)
	}
}

func TestComputeTabs_ConfidenceDampening(t *testing.T) {
	p := NewPrioritizer()
	ctx := model.VibeContext{
		IsOutdoor:       true,
		EntityRelevance: map[string]float64{model.CategoryDestination: 1.0},
	}

	confident := p.ComputeTabs(ctx)

	low := 0.0
	ctx.ConfidenceScore = &low
	dampened := p.ComputeTabs(ctx)

	// Zero confidence halves every score rather than reordering anything.
	assert.Equal(t, confident[0].Key, dampened[0].Key)
	assert.InDelta(t, confident[0].Priority*0.5, dampened[0].Priority, 1e-9)
}

func TestComputeTabs_Deterministic(t *testing.T) {
	p := NewPrioritizer()
	ctx := model.VibeContext{
		IsHybrid:        true,
		TimeOfDay:       model.TimeNight,
		EntityRelevance: map[string]float64{model.CategoryMovie: 0.7},
	}

	first := p.ComputeTabs(ctx)
	second := p.ComputeTabs(ctx)
	assert.Equal(t, first, second)
}
