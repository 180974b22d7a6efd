package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
	"github.com/vovakirdan/tui-life/internal/zoo"
)

var (
	flagWatchToroidal bool
	flagWatchWidth    int
	flagWatchHeight   int
	flagWatchLoad     string
	flagWatchRate     int
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Watch a pattern evolve live in the terminal",
	Long: `Run the live viewer in the current terminal.

Controls:
  space/p  play/pause
  s/n      single step
  r        reset to the starting grid
  t        toggle toroidal wrapping
  +/-      faster/slower
  ?        toggle help
  q        quit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&flagWatchToroidal, "toroidal", false, "Wrap the grid edges into a torus")
	watchCmd.Flags().IntVar(&flagWatchWidth, "width", 0, "Board width (0 = fit terminal)")
	watchCmd.Flags().IntVar(&flagWatchHeight, "height", 0, "Board height (0 = fit terminal)")
	watchCmd.Flags().StringVar(&flagWatchLoad, "load", "", "Load the initial grid from a .gol or .bgol file")
	watchCmd.Flags().IntVar(&flagWatchRate, "rate", 0, "Generations per second (0 = config default)")
}

func runWatch(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if cmd.Flags().Changed("toroidal") {
		cfg.Toroidal = flagWatchToroidal
	}
	if flagWatchRate > 0 {
		cfg.TickRate = flagWatchRate
	}

	screenW, screenH, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		screenW, screenH = 80, 24
	}

	opts := tui.Options{
		Toroidal: cfg.Toroidal,
		TickRate: cfg.TickRate,
		ScreenW:  screenW,
		ScreenH:  screenH,
	}

	// Leave room for the title and status lines around the board.
	boardW, boardH := cfg.Grid.Width, cfg.Grid.Height
	if flagWatchWidth > 0 {
		boardW = flagWatchWidth
	} else if screenW-2 > boardW {
		boardW = screenW - 2
	}
	if flagWatchHeight > 0 {
		boardH = flagWatchHeight
	} else if screenH-4 > boardH {
		boardH = screenH - 4
	}

	if flagWatchLoad != "" {
		g, err := zoo.Load(flagWatchLoad)
		if err != nil {
			logger.Fatal("cannot load grid", "error", err)
		}
		// Explicit dimensions reshape the loaded grid, preserving overlap.
		w, h := g.Width(), g.Height()
		if flagWatchWidth > 0 {
			w = flagWatchWidth
		}
		if flagWatchHeight > 0 {
			h = flagWatchHeight
		}
		if w != g.Width() || h != g.Height() {
			if err := g.Resize(w, h); err != nil {
				logger.Fatal("cannot resize grid", "error", err)
			}
		}
		opts.PatternName = "file"
		opts.Initial = g
	} else {
		pattern := cfg.Pattern
		if len(args) > 0 {
			pattern = args[0]
		}
		g, err := zoo.PatternOnBoard(pattern, boardW, boardH)
		if err != nil {
			logger.Fatal("cannot build initial grid", "error", err)
		}
		opts.PatternName = pattern
		opts.Initial = g
	}

	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		opts.Store = store
	} else {
		logger.Warn("could not open run database", "error", err)
	}

	if err := tui.Run(opts); err != nil {
		logger.Fatal("viewer error", "error", err)
	}
}
