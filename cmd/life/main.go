// life is a terminal workbench for Conway's Game of Life.
//
// Usage:
//
//	life run [pattern]       - Advance a pattern headless and print the result
//	life watch [pattern]     - Watch a pattern evolve live in the terminal
//	life patterns            - List built-in patterns
//	life convert <in> <out>  - Convert between text (.gol) and binary (.bgol) grid files
//	life history [pattern]   - Show recorded runs
//	life serve               - Serve the live viewer over SSH
//
// Global flags:
//
//	--config <path>  - Custom simulation config YAML
//	--db <path>      - Run-history database path (default: ~/.life/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life simulates Conway's Game of Life on a bounded or toroidal grid,
with preset patterns, grid files in two formats, a live terminal viewer,
and a history of recorded runs.

Examples:
  life run glider --steps 100
  life run rpentomino --width 80 --height 40 --toroidal
  life watch lwss
  life convert glider.gol glider.bgol
  life history glider
  life serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run-history database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
