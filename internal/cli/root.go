// Package cli provides the Cobra command structure for lintfront.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintfront/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root lintfront command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "lintfront",
		Short: "Configuration-aware front end for pluggable source analyzers",
		Long: `lintfront discovers source files, resolves cascading configuration,
and feeds each file to a pluggable analyzer.

Configuration is looked up per file: an explicit config wins, then an
embedded manifest section, then the nearest project config file walking
upward from the file, then the per-user config. Ignore patterns, extra
extensions, and markup extraction are all handled before the analyzer
ever sees the source.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
