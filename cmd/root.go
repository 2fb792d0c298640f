// Package cmd implements the tsp command line: random instance generation,
// exact solving, and solution checking over text-encoded distance matrices.
package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// maxCitySize bounds the CLI to letter-displayable instances ('A'..'Z').
// The solver itself has no such limit; the tour and matrix printers do.
const maxCitySize = 26

var (
	cfgFile  string
	logDebug bool
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "tsp",
		Short:        "Exact TSP solver over small symmetric distance matrices",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logDebug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML defaults file")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "log-debug", false, "enable debug logging")

	rootCmd.AddCommand(newRandomCommand(), newSolveCommand(ctx), newCheckCommand(ctx))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
