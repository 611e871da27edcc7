package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

// DisableColor forces plain ASCII rendering for every style
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// BranchColor picks a color for a branch name relative to the tracked main line
func BranchColor(branch, mainBranch string) lipgloss.Color {
	name := branch
	if i := strings.Index(name, "/"); i >= 0 && !strings.HasPrefix(name, "feature/") {
		// remote-tracking name such as origin/main
		name = name[i+1:]
	}

	switch {
	case name == mainBranch:
		return ColorRed
	case strings.HasPrefix(name, "feature/"):
		return ColorMagenta
	case name == "dev" || name == "develop":
		return ColorGreen
	default:
		return ColorWhite
	}
}
