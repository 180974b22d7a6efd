package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/life"
)

var (
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderFrame draws the full viewer frame: title, grid, status, help.
func renderFrame(m *Model) string {
	var sb strings.Builder

	mode := "bounded"
	if m.toroidal {
		mode = "toroidal"
	}
	state := "▶"
	if !m.playing {
		state = "⏸"
	}
	sb.WriteString(titleStyle.Render(fmt.Sprintf("life: %s", m.opts.PatternName)))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%s  gen %d  alive %d/%d  %s  %d gen/s",
		state, m.world.Generation(), m.world.AliveCells(), m.world.TotalCells(), mode, m.tickRate)))
	sb.WriteString("\n")

	// Leave room for title, status, help, and a blank line.
	maxW := m.width - 2
	maxH := m.height - 5
	sb.WriteString(renderGrid(m.world.State(), maxW, maxH))

	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// renderGrid draws the bordered grid, clipped to at most maxW x maxH cells
// so an oversized board still produces a stable frame. Alive runs are styled
// as a group to keep the ANSI overhead low.
func renderGrid(g *life.Grid, maxW, maxH int) string {
	w := g.Width()
	h := g.Height()
	clipped := false
	if maxW > 0 && w > maxW {
		w = maxW
		clipped = true
	}
	if maxH > 0 && h > maxH {
		h = maxH
		clipped = true
	}

	var sb strings.Builder
	sb.Grow((w + 3) * (h + 2))

	border := borderStyle.Render("+" + strings.Repeat("-", w) + "+")
	sb.WriteString(border)
	sb.WriteString("\n")
	wall := borderStyle.Render("|")
	for y := 0; y < h; y++ {
		sb.WriteString(wall)
		x := 0
		for x < w {
			c, err := g.Get(x, y)
			if err != nil {
				break
			}
			if c == life.Dead {
				sb.WriteByte(' ')
				x++
				continue
			}
			// Collect the run of consecutive alive cells.
			run := 0
			for x+run < w {
				c, err := g.Get(x+run, y)
				if err != nil || c != life.Alive {
					break
				}
				run++
			}
			sb.WriteString(aliveStyle.Render(strings.Repeat("█", run)))
			x += run
		}
		sb.WriteString(wall)
		sb.WriteString("\n")
	}
	sb.WriteString(border)
	sb.WriteString("\n")

	if clipped {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("(showing %dx%d of %dx%d)", w, h, g.Width(), g.Height())))
		sb.WriteString("\n")
	}
	return sb.String()
}
