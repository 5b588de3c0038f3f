package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/D-Wilbur/vocabulary/internal/config"
	"github.com/D-Wilbur/vocabulary/pkg/env"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the runtime directory and a .env template",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		if err := ensureRuntimeDir(appCfg.GetRuntimePath()); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		envPath := appCfg.GetEnvPath()
		if _, err := os.Stat(envPath); err == nil {
			fmt.Printf("%s already exists, leaving it untouched.\n", envPath)
			return nil
		}

		aiTemplate, err := env.MarshalTemplate(config.NewOpenAIConfig(ctx))
		if err != nil {
			return err
		}
		appTemplate, err := env.MarshalTemplate(appCfg)
		if err != nil {
			return err
		}

		content := "# vocab configuration\n" + aiTemplate + appTemplate
		if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
			return fmt.Errorf("failed to write .env: %w", err)
		}

		fmt.Printf("Wrote %s — set OPENAI_API_KEY there before generating.\n", envPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
