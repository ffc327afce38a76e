package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/impactbox/internal/fixed"
	"github.com/vovakirdan/impactbox/internal/geom"
	"github.com/vovakirdan/impactbox/internal/sim"
)

// nudge is the velocity change applied per steering key press, in cells
// per tick.
var nudge = fixed.Half.DivInt(4)

// Model is the Bubble Tea model for the interactive playground.
type Model struct {
	world    *sim.World
	keys     *KeyMapper
	tickRate int
	paused   bool
	quitting bool
	width    int
	height   int
}

// NewModel creates a playground model around an existing world.
func NewModel(world *sim.World, tickRate int) Model {
	return Model{
		world:    world,
		keys:     NewKeyMapper(),
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles input, resizes and simulation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if !m.paused {
			m.world.Step()
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

func (m Model) handleAction(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionPause:
		m.paused = !m.paused
	case ActionReset:
		m.world.Reset()
		m.paused = false
	case ActionNudgeUp:
		m.world.Nudge(geom.Vec{Y: -nudge})
	case ActionNudgeDown:
		m.world.Nudge(geom.Vec{Y: nudge})
	case ActionNudgeLeft:
		m.world.Nudge(geom.Vec{X: -nudge})
	case ActionNudgeRight:
		m.world.Nudge(geom.Vec{X: nudge})
	}
	return m, nil
}

// View renders the arena and HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderWorld(m.world, m.paused)
}

// Run starts the playground in the local terminal.
func Run(world *sim.World, tickRate int) error {
	p := tea.NewProgram(
		NewModel(world, tickRate),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
