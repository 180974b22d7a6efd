package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [pattern]",
	Short: "Show recorded runs",
	Long: `Show runs recorded by 'life run', the live viewer, and SSH sessions.
With a pattern argument, only that pattern's runs and its aggregate
statistics are shown.

Examples:
  life history
  life history glider
  life history glider --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the shown runs instead of listing them")
}

func runHistory(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open run database", "error", err)
	}
	defer store.Close()

	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}

	if flagHistoryClear {
		if err := store.ClearRuns(pattern); err != nil {
			logger.Fatal("cannot clear runs", "error", err)
		}
		if pattern == "" {
			fmt.Println("Cleared all recorded runs.")
		} else {
			fmt.Printf("Cleared recorded runs for %q.\n", pattern)
		}
		return
	}

	var runs []storage.RunEntry
	if pattern == "" {
		runs, err = store.RecentRuns(flagHistoryLimit)
	} else {
		runs, err = store.RunsForPattern(pattern, flagHistoryLimit)
	}
	if err != nil {
		logger.Fatal("cannot read runs", "error", err)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs yet. Try 'life run glider'.")
		return
	}

	fmt.Printf("%-4s %-12s %-9s %-12s %-8s %-12s %s\n",
		"#", "PATTERN", "SIZE", "GENERATIONS", "MODE", "ALIVE", "WHEN")
	for i, r := range runs {
		mode := "bounded"
		if r.Toroidal {
			mode = "torus"
		}
		fmt.Printf("%-4d %-12s %-9s %-12d %-8s %-12s %s\n",
			i+1,
			r.Pattern,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Generations,
			mode,
			fmt.Sprintf("%d->%d", r.AliveStart, r.AliveEnd),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	if pattern != "" {
		stats, err := store.Stats(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot compute stats: %v\n", err)
			return
		}
		fmt.Println()
		fmt.Printf("Runs:            %d\n", stats.RunCount)
		fmt.Printf("Max generations: %d\n", stats.MaxGenerations)
		fmt.Printf("Avg final alive: %.1f\n", stats.AvgAliveEnd)
		fmt.Printf("Last run:        %s\n", stats.LastRun.Local().Format("2006-01-02 15:04"))
	}
}
