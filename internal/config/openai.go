package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/pkg/log"
)

// OpenAIConfig targets any OpenAI-compatible chat-completions endpoint.
// The key is deliberately not tagged required: its absence is a user-facing
// configuration error checked before a request, not a parse failure.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4.1"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}

// Validate reports an absent credential before any network attempt.
func (c OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: OPENAI_API_KEY is not set", core.ErrConfigMissing)
	}
	return nil
}
