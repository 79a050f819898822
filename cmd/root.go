// Package cmd contains all CLI commands for the refcat binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/refcat/cmd/completion"
	cmdconfig "github.com/klytics/refcat/cmd/config"
	"github.com/klytics/refcat/cmd/generate"
	"github.com/klytics/refcat/cmd/version"
	cmdwatch "github.com/klytics/refcat/cmd/watch"
)

var (
	jsonOutput bool
	noColor    bool
)

// NewRootCommand creates and returns the root cobra command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "refcat",
		Short: "Reference catalog generator for spreadsheet workbooks",
		Long: `refcat — static reference catalogs, rendered as styled .xlsx workbooks.

Ships two built-in catalogs: C++ STL functions/algorithms and a
cross-language data structures comparison. Each catalog becomes one
multi-sheet workbook with header styling, auto-filter, frozen panes,
auto-sized columns, and banded rows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	// Register subcommands
	rootCmd.AddCommand(generate.NewCommand())
	rootCmd.AddCommand(cmdwatch.NewCommand())
	rootCmd.AddCommand(cmdconfig.NewCommand())
	rootCmd.AddCommand(completion.NewCommand(rootCmd))
	rootCmd.AddCommand(version.NewCommand())

	return rootCmd
}

// Execute runs the root command and handles any returned errors.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
