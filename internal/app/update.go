package app

import (
	"github.com/wahlandcase/attuned.repodash/internal/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.screen != ScreenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusLoadedMsg:
		return m.handleStatusLoaded(msg)
	}

	return m, nil
}

func (m Model) handleStatusLoaded(msg statusLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.Logger.Debug("Status load failed", "error", msg.err)
		m.err = msg.err
		m.status = nil
		m.screen = ScreenError
		return m, nil
	}

	st := msg.status
	m.status = &st
	m.err = nil
	m.screen = ScreenDashboard
	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		return m.choose(ActionQuit)
	}

	switch m.screen {
	case ScreenDashboard:
		return m.handleDashboardKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	}

	if msg.String() == "q" {
		return m.choose(ActionQuit)
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(menuItems) - 1

	switch msg.String() {
	case "q", "esc":
		return m.choose(ActionQuit)
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		} else {
			m.menuIndex = last // Wrap to bottom
		}
	case "down", "j":
		if m.menuIndex < last {
			m.menuIndex++
		} else {
			m.menuIndex = 0 // Wrap to top
		}
	case "r":
		return m.refresh()
	case "enter":
		return m.choose(menuItems[m.menuIndex].action)
	default:
		for i, item := range menuItems {
			if msg.String() == item.key {
				m.menuIndex = i
				return m.choose(item.action)
			}
		}
	}

	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		return m.refresh()
	case "q", "esc":
		return m.choose(ActionQuit)
	}
	return m, nil
}

// choose records action and exits, except refresh which reloads in place
func (m Model) choose(action Action) (tea.Model, tea.Cmd) {
	if action == ActionRefresh {
		return m.refresh()
	}
	m.chosen = action
	return m, tea.Quit
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.screen = ScreenLoading
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, loadStatusCmd(m.ctx, m.source))
}
