package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/smereddy/vibetrail/internal/config"
)

// NewClient builds the configured text-completion provider. Ollama is
// served through its OpenAI-compatible API.
func NewClient(ctx context.Context, cfg config.LLMConfig) (LLMClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "claude":
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "ollama":
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama" // required by the client config, ignored by Ollama
		}
		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
