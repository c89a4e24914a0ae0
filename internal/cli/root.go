// Package cli defines the Cobra command tree for the lexitok CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lexitok",
	Short: "Word-level tokenizer with project-scoped vocabularies",
	Long: `Lexitok builds word-level vocabularies from text, encodes text into
integer id sequences, and decodes them back.

Vocabularies are stored per project under .lexitok/ and can be built from a
single text (first-seen order) or from a corpus of documents (frequency
ranked, so common tokens get the lowest ids).

Run 'lexitok init' in any project directory to get started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newInitCmd(),
		newBuildCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newShowCmd(),
		newListCmd(),
		newExportCmd(),
		newImportCmd(),
		newForgetCmd(),
		newStatsCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lexitok %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
