package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/D-Wilbur/vocabulary/internal/service/review"
)

var (
	reviewLimit      int
	reviewDifficulty string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Draw a random practice set from the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		difficulty, err := review.ParseDifficulty(reviewDifficulty)
		if err != nil {
			return err
		}

		entries, err := a.sampler.Random(ctx, reviewLimit, difficulty)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No matching vocabulary yet. Generate and save some items first.")
			return nil
		}

		fmt.Printf("Practice set (%d items)\n\n", len(entries))
		printEntries(entries)
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntVarP(&reviewLimit, "limit", "n", 10, "how many entries to draw (5-30)")
	reviewCmd.Flags().StringVarP(&reviewDifficulty, "difficulty", "D", "all", "filter by difficulty: all or 1-5")
	rootCmd.AddCommand(reviewCmd)
}
