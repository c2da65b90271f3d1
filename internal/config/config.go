package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// TasteConfig points at the external recommendation provider.
type TasteConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// EngineConfig tunes the discovery and narrative steps. Zero values fall
// back to engine defaults.
type EngineConfig struct {
	MaxEntitiesPerCategory  int     `toml:"max_entities_per_category"`
	MaxConnections          int     `toml:"max_connections"`
	MinConnectionStrength   float64 `toml:"min_connection_strength"`
	NarrativeTimeoutSeconds int     `toml:"narrative_timeout_seconds"`
}

// Prompts are fmt templates for the LLM collaborators; empty entries use
// the built-in defaults.
type Prompts struct {
	Seeds     string `toml:"seeds"`
	Narrative string `toml:"narrative"`
}

type Config struct {
	LLM     LLMConfig    `toml:"llm"`
	Taste   TasteConfig  `toml:"taste"`
	Engine  EngineConfig `toml:"engine"`
	Prompts Prompts      `toml:"prompts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}
