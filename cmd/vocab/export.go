package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/D-Wilbur/vocabulary/internal/service/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored vocabulary to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()

		n, err := export.WriteCSV(ctx, a.repo, f)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d entries to %s\n", n, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "vocab_export.csv", "output file path")
	rootCmd.AddCommand(exportCmd)
}
