// Package cli provides the Cobra command structure for tagtree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tagtree command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "tagtree",
		Short: "A tiny markup tokenizer and document tree builder",
		Long: `tagtree tokenizes angle-bracket markup and builds a document tree
from the token stream.

The scanner recognizes start tags, end tags, and text runs; the builder
nests them under a synthetic document root using an open-element stack.
Malformed input never aborts a run: stray or unterminated tags are
reported as diagnostics and the best-effort tree is printed anyway.`,
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

	newHelpFormatter(color, os.Stdout).apply(rootCmd)

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
