package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/smereddy/vibetrail/internal/core/common"
	"github.com/smereddy/vibetrail/internal/core/model"
	"github.com/smereddy/vibetrail/internal/llm"
)

const defaultNarrativePrompt = `You are a cultural taste analyst.
The user described their vibe as: %s
Their recommendations span these categories: %s
Dominant themes: %s
Strongest connections: %s

Return a JSON object:
{
  "insights": [
    {"type": "psychological", "title": "...", "description": "...", "confidence": 0.0}
  ],
  "narrative": "two or three sentences tying the ecosystem together"
}
Allowed insight types: pattern, connection, recommendation, psychological.
Do not output any other text.`

// Narrator wraps the text-completion collaborator to produce deeper
// insights and a narrative paragraph. Callers treat every error as
// recoverable; the ecosystem is assembled without it.
type Narrator struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewNarrator(client llm.LLMClient, prompt string) *Narrator {
	if prompt == "" {
		prompt = defaultNarrativePrompt
	}
	return &Narrator{LLM: client, Prompt: prompt}
}

func (n *Narrator) GenerateNarrative(ctx context.Context, summary model.NarrativeSummary) (*model.NarrativeResult, error) {
	prompt := fmt.Sprintf(n.Prompt,
		summary.Vibe,
		strings.Join(summary.Categories, ", "),
		strings.Join(summary.Themes, ", "),
		strings.Join(summary.Connections, "; "),
	)

	response, err := n.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate narrative: %w", err)
	}

	result, err := common.ParseJSON[model.NarrativeResult](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse narrative result: %w", err)
	}
	result.Insights = ValidateExternal(result.Insights)
	return &result, nil
}
