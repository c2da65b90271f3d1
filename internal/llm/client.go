package llm

import (
	"context"
)

// LLMClient is the text-completion collaborator contract. Everything the
// engine asks of an LLM goes through Generate; providers are interchangeable.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
