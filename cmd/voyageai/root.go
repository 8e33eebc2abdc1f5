package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "voyageai",
	Short: "Deterministic multi-stage travel planner",
	Long: `voyageai turns a natural-language trip description into a fully
costed, risk-scored itinerary through a fixed pipeline of planning
stages. Run "voyageai serve" to expose the HTTP API, or
"voyageai plan" for a one-shot plan on the command line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
