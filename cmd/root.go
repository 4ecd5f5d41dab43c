// Package cmd defines and implements the CLI commands for the newsscan
// executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newsscan",
		Short: "A concurrent scanner for paginated news listings.",
		Long: `newsscan fetches paginated news-listing pages from a fixed set of
article-index sites, extracts article titles and links, optionally filters
them by a keyword, and prints the results.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (defaults to built-in settings)")

	cmd.AddCommand(newScanCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
