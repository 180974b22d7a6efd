package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
	"github.com/vovakirdan/tui-life/internal/zoo"
)

var (
	flagSteps    int
	flagToroidal bool
	flagWidth    int
	flagHeight   int
	flagLoad     string
	flagSave     string
	flagQuiet    bool
)

var runCmd = &cobra.Command{
	Use:   "run [pattern]",
	Short: "Advance a pattern headless and print the result",
	Long: `Build the initial grid, advance it a number of generations, and print
the final state. The run is recorded in the history database.

The initial grid is a built-in pattern centred on the board, or a grid
file given with --load (.gol text or .bgol binary).

Examples:
  life run glider --steps 100
  life run rpentomino --width 80 --height 40 --toroidal --steps 1000
  life run --load saved.gol --steps 50 --save evolved.gol
  life run lwss --save lwss.bgol --steps 0`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagSteps, "steps", 100, "Number of generations to advance")
	runCmd.Flags().BoolVar(&flagToroidal, "toroidal", false, "Wrap the grid edges into a torus")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (0 = config default)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (0 = config default)")
	runCmd.Flags().StringVar(&flagLoad, "load", "", "Load the initial grid from a .gol or .bgol file")
	runCmd.Flags().StringVar(&flagSave, "save", "", "Save the final grid to a .gol or .bgol file")
	runCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress the grid printout")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if cmd.Flags().Changed("toroidal") {
		cfg.Toroidal = flagToroidal
	}

	initial, patternName, err := initialGrid(args, cfg)
	if err != nil {
		logger.Fatal("cannot build initial grid", "error", err)
	}

	world, err := life.NewWorldFromGrid(initial.Clone())
	if err != nil {
		logger.Fatal("cannot build world", "error", err)
	}

	world.Advance(flagSteps, cfg.Toroidal)
	logger.Info("run finished",
		"pattern", patternName,
		"size", fmt.Sprintf("%dx%d", world.Width(), world.Height()),
		"generations", world.Generation(),
		"toroidal", cfg.Toroidal,
		"alive", world.AliveCells(),
	)

	if !flagQuiet {
		fmt.Print(world.State())
	}

	if flagSave != "" {
		if err := zoo.Save(flagSave, world.State()); err != nil {
			logger.Fatal("cannot save grid", "error", err)
		}
		logger.Info("saved final grid", "path", flagSave)
	}

	recordRun(logger, storage.RunEntry{
		Pattern:     patternName,
		Width:       world.Width(),
		Height:      world.Height(),
		Generations: world.Generation(),
		Toroidal:    cfg.Toroidal,
		AliveStart:  initial.AliveCells(),
		AliveEnd:    world.AliveCells(),
	})
}

// initialGrid builds the starting grid from --load or a preset pattern
// centred on the configured board.
func initialGrid(args []string, cfg config.SimConfig) (*life.Grid, string, error) {
	if flagLoad != "" {
		g, err := zoo.Load(flagLoad)
		if err != nil {
			return nil, "", err
		}
		w, h := g.Width(), g.Height()
		if flagWidth > 0 {
			w = flagWidth
		}
		if flagHeight > 0 {
			h = flagHeight
		}
		if w != g.Width() || h != g.Height() {
			if err := g.Resize(w, h); err != nil {
				return nil, "", err
			}
		}
		return g, "file", nil
	}

	pattern := cfg.Pattern
	if len(args) > 0 {
		pattern = args[0]
	}
	w, h := cfg.Grid.Width, cfg.Grid.Height
	if flagWidth > 0 {
		w = flagWidth
	}
	if flagHeight > 0 {
		h = flagHeight
	}
	g, err := zoo.PatternOnBoard(pattern, w, h)
	if err != nil {
		return nil, "", err
	}
	return g, pattern, nil
}

// recordRun appends the run to the history database. History is best
// effort; the simulation result was already printed.
func recordRun(logger *log.Logger, entry storage.RunEntry) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(entry); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
