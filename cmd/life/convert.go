package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/zoo"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert between text (.gol) and binary (.bgol) grid files",
	Long: `Read a grid file and write it back in the format implied by the output
extension. Either direction works, including same-format copies.

Examples:
  life convert glider.gol glider.bgol
  life convert soup.bgol soup.gol`,
	Args: cobra.ExactArgs(2),
	Run:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})

	in, out := args[0], args[1]
	g, err := zoo.Load(in)
	if err != nil {
		logger.Fatal("cannot read grid", "path", in, "error", err)
	}
	if err := zoo.Save(out, g); err != nil {
		logger.Fatal("cannot write grid", "path", out, "error", err)
	}
	logger.Info("converted",
		"from", in,
		"to", out,
		"size", g.Width()*g.Height(),
		"alive", g.AliveCells(),
	)
}
