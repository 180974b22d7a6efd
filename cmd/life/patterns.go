package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/zoo"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in patterns",
	Run:   runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) {
	fmt.Println("Built-in patterns:")
	fmt.Println()
	for _, name := range zoo.Names() {
		g, err := zoo.Pattern(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", name, err)
			continue
		}
		fmt.Printf("  %-12s %dx%d, %d alive\n", name, g.Width(), g.Height(), g.AliveCells())
	}
	fmt.Println()
	fmt.Println("Use 'life run <pattern>' or 'life watch <pattern>' to simulate one.")
}
