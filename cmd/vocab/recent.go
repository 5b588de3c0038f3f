package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recently added vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.sampler.Recent(ctx, recentLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("The vocab store is empty. Generate and save some items first.")
			return nil
		}

		fmt.Printf("Most recent entries (up to %d)\n\n", recentLimit)
		printEntries(entries)
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 100, "how many entries to list")
	rootCmd.AddCommand(recentCmd)
}
