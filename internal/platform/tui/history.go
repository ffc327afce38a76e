package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/impactbox/internal/storage"
)

// HistoryKeyMap defines keyboard bindings for the run history view.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns the key bindings shown in the mini help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns all key bindings for the expanded help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns the default history key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var historyTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("208")).
	Bold(true).
	Padding(0, 1)

// HistoryModel is the Bubble Tea model for browsing saved runs.
type HistoryModel struct {
	table table.Model
	help  help.Model
	keys  HistoryKeyMap
}

// NewHistoryModel creates a history model populated with the given runs,
// newest first.
func NewHistoryModel(entries []storage.RunEntry) HistoryModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Scene", Width: 16},
		{Title: "Ticks", Width: 7},
		{Title: "Impacts", Width: 8},
		{Title: "Checksum", Width: 18},
		{Title: "When", Width: 16},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Scene,
			fmt.Sprintf("%d", e.Ticks),
			fmt.Sprintf("%d", e.Impacts),
			fmt.Sprintf("%016x", e.Checksum),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return HistoryModel{
		table: t,
		help:  help.New(),
		keys:  DefaultHistoryKeyMap(),
	}
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles input and resizes.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		height := msg.Height - 6
		if height < 3 {
			height = 3
		}
		m.table.SetHeight(height)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run table with a title and help footer.
func (m HistoryModel) View() string {
	return historyTitleStyle.Render("Run History") + "\n" +
		m.table.View() + "\n" +
		m.help.View(m.keys) + "\n"
}

// RunHistory shows the run history table in the local terminal.
func RunHistory(entries []storage.RunEntry) error {
	p := tea.NewProgram(NewHistoryModel(entries), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
