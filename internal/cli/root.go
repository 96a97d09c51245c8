// Package cli implements the took command-line interface using Cobra.
// Each subcommand drives the tracker service; rendering happens in the
// render package and never inside the tracker itself.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "took",
	Short: "Track time spent on tasks",
	Long: `took records how long you work on named tasks.

Start a task, pause it or switch to another, then read the history back
as per-day logs and reports. Everything is stored in a JSON file inside
a .took directory, designed to be committed alongside your code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
