package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// StatusIcon returns the icon and color for a phase state
func StatusIcon(status string) (string, lipgloss.Color) {
	switch status {
	case "success":
		return "✓", ColorGreen
	case "skipped":
		return "⊘", ColorYellow
	case "failed":
		return "✗", ColorRed
	case "aborted":
		return "■", ColorRed
	default:
		return "·", ColorWhite
	}
}

// MenuRow renders a menu row with optional highlight background
// width should be the inner width of the panel (excluding border)
func MenuRow(key, title, desc string, color lipgloss.Color, selected bool, width int) []string {
	arrow := "  "
	if selected {
		arrow = "▶ "
	}

	if selected {
		rowStyle := lipgloss.NewStyle().Background(ColorDarkGray).Width(width)
		arrowStyle := lipgloss.NewStyle().Foreground(color).Background(ColorDarkGray)
		keyStyle := lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorDarkGray)
		titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Background(ColorDarkGray)
		descStyle := lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorDarkGray)

		line1 := rowStyle.Render(arrowStyle.Render(arrow) + keyStyle.Render("["+key+"] ") + titleStyle.Render(title))
		line2 := rowStyle.Render("      " + descStyle.Render(desc))

		return []string{line1, line2}
	}

	arrowStyle := lipgloss.NewStyle().Foreground(color)
	keyStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	line1 := arrowStyle.Render(arrow) + keyStyle.Render("["+key+"] ") + titleStyle.Render(title)
	line2 := "      " + descStyle.Render(desc)

	return []string{line1, line2}
}

// UnifiedPanel creates two columns with a vertical separator
func UnifiedPanel(leftContent, rightContent string, leftWidth, rightWidth int) string {
	leftStyle := lipgloss.NewStyle().Width(leftWidth).Padding(0, 1)
	rightStyle := lipgloss.NewStyle().Width(rightWidth).Padding(0, 1)

	leftCol := leftStyle.Render(leftContent)
	rightCol := rightStyle.Render(rightContent)

	separator := lipgloss.NewStyle().Foreground(ColorDarkGray).Render("│")
	height := max(lipgloss.Height(leftCol), lipgloss.Height(rightCol))
	sepLines := make([]string, height)
	for i := range sepLines {
		sepLines[i] = separator
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, strings.Join(sepLines, "\n"), rightCol)
}

// TitledBox renders content in a rounded border with a bold title line
func TitledBox(content, title string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)

	if width > 0 {
		style = style.Width(width)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	return style.Render(titleStyle.Render(title) + "\n" + content)
}

// Truncate shortens s to width runes, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
