// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Interactive browser for captured leads and fraud cases
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/poojareddy/voicedesk/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// EntityType represents the collection being browsed
type EntityType int

const (
	EntityLeads EntityType = iota
	EntityCases
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// Model is the main bubbletea model
type Model struct {
	store      *store.Store
	viewMode   ViewMode
	entityType EntityType

	selectedRow int

	width  int
	height int
	err    error
}

// NewModel creates a new TUI model
func NewModel(st *store.Store) Model {
	return Model{
		store:      st,
		viewMode:   ViewList,
		entityType: EntityLeads,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.viewMode {
		case ViewList:
			return m.updateListView(msg)
		case ViewDetail:
			return m.updateDetailView(msg)
		}
	}
	return m, nil
}

func (m Model) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.entityType == EntityLeads {
			m.entityType = EntityCases
		} else {
			m.entityType = EntityLeads
		}
		m.selectedRow = 0
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "enter":
		if m.rowCount() > 0 {
			m.viewMode = ViewDetail
		}
	}
	return m, nil
}

func (m Model) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.viewMode = ViewList
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	switch m.viewMode {
	case ViewDetail:
		return m.renderDetailView()
	default:
		return m.renderListView()
	}
}

func (m Model) rowCount() int {
	switch m.entityType {
	case EntityLeads:
		leads, err := m.store.LoadLeads()
		if err != nil {
			return 0
		}
		return len(leads)
	case EntityCases:
		cases, err := m.store.LoadCases()
		if err != nil {
			return 0
		}
		return len(cases)
	}
	return 0
}

// Run launches the TUI over the given store.
func Run(st *store.Store) error {
	p := tea.NewProgram(NewModel(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
