package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/smereddy/vibetrail/internal/core/common"
	"github.com/smereddy/vibetrail/internal/core/model"
	"github.com/smereddy/vibetrail/internal/llm"
)

const defaultSeedPrompt = `Analyze this vibe description and extract searchable seeds plus situational context.

Vibe: %s

Return a JSON object:
{
  "seeds": [
    {"text": "...", "category": "food|activity|media|general", "confidence": 0.0, "search_terms": ["..."]}
  ],
  "context": {
    "is_indoor": false, "is_outdoor": false, "is_hybrid": false,
    "time_of_day": "morning|afternoon|evening|night or omit",
    "season": "spring|summer|fall|winter or omit",
    "entity_relevance": {"place": 0.0, "movie": 0.0, "tv_show": 0.0, "artist": 0.0, "book": 0.0, "podcast": 0.0, "videogame": 0.0, "destination": 0.0},
    "confidence_score": 0.0
  }
}
Extract at most 5 seeds. Do not output any other text.`

// Extractor turns free-text vibes into seeds and a VibeContext. With a nil
// or failing collaborator it degrades to deterministic keyword heuristics,
// so the engine always has at least one seed for a non-empty vibe.
type Extractor struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewExtractor(client llm.LLMClient, prompt string) *Extractor {
	if prompt == "" {
		prompt = defaultSeedPrompt
	}
	return &Extractor{LLM: client, Prompt: prompt}
}

type extractionPayload struct {
	Seeds   []model.ExtractedSeed `json:"seeds"`
	Context model.VibeContext     `json:"context"`
}

func (e *Extractor) Extract(ctx context.Context, vibe string) ([]model.ExtractedSeed, model.VibeContext, error) {
	vibe = strings.TrimSpace(vibe)
	if vibe == "" {
		return nil, model.VibeContext{}, fmt.Errorf("vibe text is empty")
	}

	if e.LLM != nil {
		response, err := e.LLM.Generate(ctx, fmt.Sprintf(e.Prompt, vibe))
		if err == nil {
			payload, perr := common.ParseJSON[extractionPayload](response)
			if perr == nil && len(payload.Seeds) > 0 {
				return clampSeeds(payload.Seeds), payload.Context, nil
			}
		}
		// LLM or parse failure falls through to heuristics.
	}

	seeds, vctx := heuristicExtract(vibe)
	return seeds, vctx, nil
}

func clampSeeds(seeds []model.ExtractedSeed) []model.ExtractedSeed {
	if len(seeds) > 5 {
		seeds = seeds[:5]
	}
	for i := range seeds {
		if seeds[i].Confidence < 0 {
			seeds[i].Confidence = 0
		}
		if seeds[i].Confidence > 1 {
			seeds[i].Confidence = 1
		}
		switch seeds[i].Category {
		case model.SeedFood, model.SeedActivity, model.SeedMedia, model.SeedGeneral:
		default:
			seeds[i].Category = model.SeedGeneral
		}
	}
	return seeds
}
