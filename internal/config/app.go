package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/D-Wilbur/vocabulary/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"VOCAB_RUNTIME_PATH" envDefault:".vocab"`

	// ForbiddenCap bounds how many previously seen words a single prompt
	// may carry, to keep the instruction size in check.
	ForbiddenCap int `env:"VOCAB_FORBIDDEN_CAP" envDefault:"200"`

	// Retries for transient transport failures. 0 keeps the original
	// single-shot behavior.
	GenerationRetries int `env:"VOCAB_GENERATION_RETRIES" envDefault:"0"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	c.RuntimePath = absRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "vocab.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func absRuntimePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path)
}
