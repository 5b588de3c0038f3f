package llm

import (
	"github.com/D-Wilbur/vocabulary/internal/config"
	"github.com/D-Wilbur/vocabulary/internal/core"
)

// NewProvider builds the generation client from config. The credential
// check happens upstream, before any request is attempted.
func NewProvider(cfg *config.OpenAIConfig) core.Provider {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}
