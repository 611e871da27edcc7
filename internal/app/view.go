package app

import (
	"strings"

	"github.com/wahlandcase/attuned.repodash/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 60 {
		w = 60
	}
	return w
}

// View renders the dashboard
func (m Model) View() string {
	if m.chosen != ActionNone {
		return ""
	}

	var sections []string
	sections = append(sections, strings.Join(ui.RenderBannerLines(m.dryRun), "\n"), "")

	if m.repoPath != "" {
		dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		sections = append(sections, dim.Render("  "+m.repoPath), "")
	}

	switch m.screen {
	case ScreenLoading:
		sections = append(sections, m.renderLoading())
	case ScreenError:
		sections = append(sections, m.renderError())
	default:
		sections = append(sections, m.renderDashboard())
	}

	sections = append(sections, "", m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m Model) renderLoading() string {
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	return "  " + m.spinner.View() + " " + textStyle.Render("Loading repository status…")
}

func (m Model) renderError() string {
	errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
	content := errStyle.Render(m.err.Error())
	return ui.TitledBox(content, "✗ Could not read repository status", ui.ColorRed, m.contentWidth())
}

func (m Model) renderDashboard() string {
	total := m.contentWidth()
	leftWidth := total * 3 / 5
	rightWidth := total - leftWidth - 1

	var left string
	if m.status != nil {
		left = ui.RenderStatus(*m.status, m.mainBranch)
	}

	return ui.UnifiedPanel(left, m.renderMenu(rightWidth-2), leftWidth, rightWidth)
}

func (m Model) renderMenu(width int) string {
	var lines []string
	lines = append(lines, ui.SectionHeader("ACTIONS", ui.ColorMagenta), "")

	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		lines = append(lines, "  "+noticeStyle.Render(ui.Truncate(m.notice, width-2)), "")
	}

	for i, item := range menuItems {
		color := ui.ColorCyan
		if item.action == ActionQuit {
			color = ui.ColorRed
		}
		lines = append(lines, ui.MenuRow(item.key, item.title, item.desc, color, i == m.menuIndex, width)...)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	var hints []string
	switch m.screen {
	case ScreenDashboard:
		hints = []string{
			ui.KeyBinding("↑↓", "move", ui.ColorCyan),
			ui.KeyBinding("enter", "select", ui.ColorCyan),
			ui.KeyBinding("1-6", "jump", ui.ColorCyan),
			ui.KeyBinding("r", "refresh", ui.ColorCyan),
			ui.KeyBinding("q", "quit", ui.ColorRed),
		}
	case ScreenError:
		hints = []string{
			ui.KeyBinding("r", "retry", ui.ColorCyan),
			ui.KeyBinding("q", "quit", ui.ColorRed),
		}
	default:
		hints = []string{ui.KeyBinding("q", "quit", ui.ColorRed)}
	}
	return "  " + strings.Join(hints, "  ·  ")
}
