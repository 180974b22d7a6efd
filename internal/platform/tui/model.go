package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Tick rate bounds for the +/- speed controls.
const (
	minTickRate = 1
	maxTickRate = 60
)

// Options configures a viewer session.
type Options struct {
	// PatternName labels the session in the run history.
	PatternName string

	// Initial is the starting grid. The model clones it so reset can
	// return to the exact starting state.
	Initial *life.Grid

	// Toroidal selects edge-wrapping topology.
	Toroidal bool

	// TickRate is generations per second while playing.
	TickRate int

	// ScreenW and ScreenH are the initial terminal dimensions.
	ScreenW, ScreenH int

	// Store receives the run record on quit. May be nil.
	Store *storage.Store
}

// Model is the Bubble Tea model for the live viewer.
type Model struct {
	opts     Options
	initial  *life.Grid
	world    *life.World
	playing  bool
	toroidal bool
	tickRate int
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
	err      error
}

// NewModel creates a viewer for the given session options.
func NewModel(opts Options) (Model, error) {
	if opts.TickRate < minTickRate {
		opts.TickRate = minTickRate
	}
	initial := opts.Initial.Clone()
	world, err := life.NewWorldFromGrid(opts.Initial)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot build world: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:     opts,
		initial:  initial,
		world:    world,
		playing:  true,
		toroidal: opts.Toroidal,
		tickRate: opts.TickRate,
		keys:     DefaultKeyMap(),
		help:     h,
		width:    opts.ScreenW,
		height:   opts.ScreenH,
	}, nil
}

// Init starts the generation tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		if m.playing {
			m.world.Step(m.toroidal)
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.recordRun()
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		m.playing = !m.playing

	case key.Matches(msg, m.keys.Step):
		if !m.playing {
			m.world.Step(m.toroidal)
		}

	case key.Matches(msg, m.keys.Reset):
		world, err := life.NewWorldFromGrid(m.initial.Clone())
		if err != nil {
			m.err = err
			break
		}
		m.world = world

	case key.Matches(msg, m.keys.Toroidal):
		m.toroidal = !m.toroidal

	case key.Matches(msg, m.keys.Faster):
		if m.tickRate < maxTickRate {
			m.tickRate++
		}

	case key.Matches(msg, m.keys.Slower):
		if m.tickRate > minTickRate {
			m.tickRate--
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// recordRun saves the session to the run history. Best effort; viewing
// works fine without a store.
func (m *Model) recordRun() {
	if m.opts.Store == nil || m.world.Generation() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save on quit
	m.opts.Store.SaveRun(storage.RunEntry{
		Pattern:     m.opts.PatternName,
		Width:       m.world.Width(),
		Height:      m.world.Height(),
		Generations: m.world.Generation(),
		Toroidal:    m.toroidal,
		AliveStart:  m.initial.AliveCells(),
		AliveEnd:    m.world.AliveCells(),
	})
}

// View renders the viewer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderFrame(&m)
}

// Run starts a viewer session in the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
