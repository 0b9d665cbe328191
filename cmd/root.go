package cmd

import (
	"fmt"
	"os"

	"github.com/hassantayyab/cursor-mobile-chat/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	configPath  string
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-mobile-chat",
	Short: "Extract and sync Cursor IDE chat threads",
	Long: `Companion process for the cursor-mobile-chat pipeline.

Reads Cursor's per-workspace and global state.vscdb stores through an
isolated copy, normalizes every recognized schema generation into threads
and messages, and computes incremental diffs between runs.

Quick Start:
  cursor-mobile-chat databases           # List discovered databases
  cursor-mobile-chat extract             # Normalize everything to JSON
  cursor-mobile-chat sync                # Diff against the last run`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for a command run. The
// --storage flag overrides any storage_path from the config file.
func loadConfig() (internal.Config, error) {
	cfg := internal.DefaultConfig()
	if configPath != "" {
		loaded, err := internal.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if storagePath != "" {
		cfg.StoragePath = storagePath
	}
	return cfg, nil
}

// newLogger builds the logger injected into pipeline components.
func newLogger() internal.Logger {
	level := internal.LogLevelInfo
	if verbose {
		level = internal.LogLevelDebug
	}
	return internal.NewStdLogger(level)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Explicit Cursor User directory (overrides auto-detection)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
