// Package cli implements the brandkit command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/brandkit/internal/config"
	"github.com/opencode-ai/brandkit/internal/db"
	"github.com/opencode-ai/brandkit/internal/logging"
)

var (
	cfgFile        string
	jsonOutput     bool
	jsonlOutput    bool
	noProgress     bool
	nonInteractive bool
	logLevel       string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "Design token engine for brand profiles",
	Long: `brandkit turns a brand's primary color, fonts and layout choices into a
complete, validated design token tree, and resolves that tree into
pixel-exact values for fixed-size surfaces such as display ads.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/brandkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() error {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.SetConfigFile(cfgFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logging.Init(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	if used := loader.ConfigFileUsed(); used != "" {
		log := logging.Component("cli")
		log.Debug().Str("path", used).Msg("config loaded")
	}
	appConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration, or the defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	database, err := db.Open(db.Config{
		Path:          cfg.Database.Path,
		BusyTimeoutMs: cfg.Database.BusyTimeoutMs,
	})
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}
