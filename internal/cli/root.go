// Package cli implements the petal command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/petal/internal/config"
	"github.com/opencode-ai/petal/internal/logging"
)

var (
	configPath     string
	logLevel       string
	logFormat      string
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "petal",
	Short:         "Design tokens and secure preferences",
	Long:          "petal inspects the built-in theme presets and manages values in the device-bound keystore.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Logging.Format = logFormat
		}
		if err := logging.Init(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()); err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/petal/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt for input")
}

// GetConfig returns the loaded configuration, or nil before a command runs.
func GetConfig() *config.Config {
	return appConfig
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
