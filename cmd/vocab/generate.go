package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/internal/service/generator"
)

var (
	generateTopic      string
	generateCount      int
	generateDifficulty int
	generateRounds     int
	generateSave       bool
	generateSaveOnly   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate topical daily-life vocabulary",
	Long: `Asks the model for daily-life words or short phrases for a topic at the
chosen rarity level. Words already produced for the same topic in this
session are passed back as a do-not-reuse list; with --rounds the session
spans several batches, each avoiding everything before it. Nothing is
stored unless --save or --save-only is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.checkCredentials(); err != nil {
			return err
		}

		req := generator.Request{
			Mode:       core.ModeTopical,
			Topic:      generateTopic,
			Count:      generateCount,
			Difficulty: generateDifficulty,
		}

		fmt.Printf("Topic: %s, difficulty %d\n\n", generateTopic, generateDifficulty)
		return runRounds(ctx, a.pipeline, req, runOptions{
			rounds:   generateRounds,
			save:     generateSave,
			saveOnly: generateSaveOnly,
		})
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "life topic, e.g. \"doctor visit\" (required)")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 12, "how many words or phrases to generate (5-30)")
	generateCmd.Flags().IntVarP(&generateDifficulty, "difficulty", "D", 2, "rarity level, 1 = ubiquitous, 5 = rare but practical")
	generateCmd.Flags().IntVarP(&generateRounds, "rounds", "r", 1, "how many batches to generate in this session, deduplicated against each other")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "save every generated batch to the store")
	generateCmd.Flags().StringVar(&generateSaveOnly, "save-only", "", "save only the listed item numbers, e.g. 1,3,5 (single round)")
	_ = generateCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(generateCmd)
}
