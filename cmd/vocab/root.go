package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/D-Wilbur/vocabulary/internal/config"
	"github.com/D-Wilbur/vocabulary/pkg/log"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Personal vocabulary builder backed by an LLM",
	Long: `vocab asks a language model for topical vocabulary or phrasal verbs,
keeps track of what it already produced to steer away from repeats, and
stores confirmed items in a local sqlite database for later review.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	return log.NewContextWithLogger(ctx, debug || config.IsDebug())
}
