// Package cli provides the Cobra command structure for mdtg.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdtg command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "mdtg",
		Short: "Convert Markdown to Telegram MarkdownV2",
		Long: `mdtg converts Markdown to Telegram MarkdownV2 and splits the result
into messages that fit Telegram's length limit.

Use "format" to convert text locally, or "serve" to run a webhook bot that
echoes every message it receives back to its chat in MarkdownV2.`,
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

	// Add subcommands.
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newServeCommand(&debug))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
