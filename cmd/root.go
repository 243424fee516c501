// Package cmd implements the flipcalc CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flipcalc",
	Short: "Fix-and-flip loan fundability calculator",
	Long: "Size a fix-and-flip loan from a handful of deal numbers and see\n" +
		"whether the scenario is fully fundable, needs a downpayment, or\n" +
		"cannot be funded. Run with no arguments for the interactive panel.",
	RunE: runEval,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
