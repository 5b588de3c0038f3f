package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/D-Wilbur/vocabulary/internal/core"
	"github.com/D-Wilbur/vocabulary/internal/service/generator"
)

var (
	phrasalCount      int
	phrasalDifficulty int
	phrasalRounds     int
	phrasalSave       bool
	phrasalSaveOnly   string
)

var phrasalCmd = &cobra.Command{
	Use:   "phrasal",
	Short: "Generate daily-life phrasal verbs",
	Long: `Asks the model for phrasal verbs at the chosen rarity level. History is
tracked per difficulty level rather than per topic, so repeated rounds at
the same level keep exploring new phrases.`,
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
			Mode:       core.ModePhrasal,
			Count:      phrasalCount,
			Difficulty: phrasalDifficulty,
		}

		fmt.Printf("Phrasal verbs, difficulty %d\n\n", phrasalDifficulty)
		return runRounds(ctx, a.pipeline, req, runOptions{
			rounds:   phrasalRounds,
			save:     phrasalSave,
			saveOnly: phrasalSaveOnly,
		})
	},
}

func init() {
	phrasalCmd.Flags().IntVarP(&phrasalCount, "count", "n", 10, "how many phrasal verbs to generate (5-30)")
	phrasalCmd.Flags().IntVarP(&phrasalDifficulty, "difficulty", "D", 2, "rarity level, 1 = common, 5 = rare/advanced")
	phrasalCmd.Flags().IntVarP(&phrasalRounds, "rounds", "r", 1, "how many batches to generate in this session, deduplicated against each other")
	phrasalCmd.Flags().BoolVar(&phrasalSave, "save", false, "save every generated batch to the store")
	phrasalCmd.Flags().StringVar(&phrasalSaveOnly, "save-only", "", "save only the listed item numbers, e.g. 1,3,5 (single round)")
	rootCmd.AddCommand(phrasalCmd)
}
