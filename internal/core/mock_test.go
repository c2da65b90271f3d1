package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/smereddy/vibetrail/internal/core/model"
)

// MockFetcher serves canned entities per category and can simulate
// per-category failures.
type MockFetcher struct {
	EntitiesByCategory map[string][]model.Entity
	FailCategories     map[string]bool

	mu    sync.Mutex
	Calls []string
}

func (m *MockFetcher) Fetch(ctx context.Context, category, location string, queryTags []string, seeds []model.ExtractedSeed, limit int) ([]model.Entity, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, category)
	m.mu.Unlock()

	if m.FailCategories[category] {
		return nil, fmt.Errorf("provider down for %s", category)
	}
	return m.EntitiesByCategory[category], nil
}

type MockNarrator struct {
	Result *model.NarrativeResult
	Err    error
}

func (m *MockNarrator) GenerateNarrative(ctx context.Context, summary model.NarrativeSummary) (*model.NarrativeResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
