package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/D-Wilbur/vocabulary/internal/config"
	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/internal/providers/llm"
	"github.com/D-Wilbur/vocabulary/internal/service/generator"
	"github.com/D-Wilbur/vocabulary/internal/service/review"
	"github.com/D-Wilbur/vocabulary/internal/storage/sqlite"
	"github.com/D-Wilbur/vocabulary/pkg/log"
)

// app holds the wired-up dependencies for one CLI invocation. One process
// is one session: the history tracker lives here and dies with it.
type app struct {
	cfg      *config.AppConfig
	aiCfg    *config.OpenAIConfig
	db       *sql.DB
	repo     *sqlite.VocabRepo
	history  *generator.History
	pipeline *generator.Service
	sampler  *review.Sampler
}

func newApp(ctx context.Context) (*app, error) {
	// .env in the runtime dir is optional; real env vars take precedence.
	appCfg := config.NewAppConfig(ctx)
	if err := godotenv.Load(appCfg.GetEnvPath()); err == nil {
		log.FromCtx(ctx).Debug().Str("path", appCfg.GetEnvPath()).Msg("loaded .env")
		appCfg = config.NewAppConfig(ctx)
	}
	aiCfg := config.NewOpenAIConfig(ctx)

	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open vocab store: %w", err)
	}

	repo := sqlite.NewVocabRepo(db)
	history := generator.NewHistory()

	return &app{
		cfg:      appCfg,
		aiCfg:    aiCfg,
		db:       db,
		repo:     repo,
		history:  history,
		pipeline: generator.NewService(appCfg, llm.NewProvider(aiCfg), history, repo),
		sampler:  review.NewSampler(repo),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// checkCredentials runs before any generation attempt so a missing key is
// reported as a configuration problem with a way to fix it.
func (a *app) checkCredentials() error {
	if err := a.aiCfg.Validate(); err != nil {
		return fmt.Errorf("%w (set it in the environment or run 'vocab init' and edit %s)", err, a.cfg.GetEnvPath())
	}
	return nil
}

func printItems(items []core.VocabItem) {
	for i, it := range items {
		fmt.Printf("%d. %s\n", i+1, it.Word)
		if it.MeaningEN != "" {
			fmt.Printf("   EN: %s\n", it.MeaningEN)
		}
		if it.MeaningZH != "" {
			fmt.Printf("   ZH: %s\n", it.MeaningZH)
		}
		if it.Example != "" {
			fmt.Printf("   e.g. %s\n", it.Example)
		}
		fmt.Println()
	}
}

func printEntries(entries []core.StoredEntry) {
	for _, e := range entries {
		difficulty := "-"
		if e.Difficulty != nil {
			difficulty = fmt.Sprintf("%d", *e.Difficulty)
		}
		topic := e.Topic
		if topic == "" {
			topic = "-"
		}
		tag := e.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Printf("%s  (topic: %s | tag: %s | difficulty: %s | added: %s)\n",
			e.Word, topic, tag, difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
		if e.MeaningEN != "" {
			fmt.Printf("   EN: %s\n", e.MeaningEN)
		}
		if e.MeaningZH != "" {
			fmt.Printf("   ZH: %s\n", e.MeaningZH)
		}
		if e.Example != "" {
			fmt.Printf("   e.g. %s\n", e.Example)
		}
		fmt.Println()
	}
}

func ensureRuntimeDir(path string) error {
	return os.MkdirAll(path, 0755)
}
