package ui

import "github.com/charmbracelet/lipgloss"

// Banner is the ASCII art shown at the top of the dashboard
var Banner = []string{
	" ____  _____ ____   ___  ____    _    ____  _   _ ",
	"|  _ \\| ____|  _ \\ / _ \\|  _ \\  / \\  / ___|| | | |",
	"| |_) |  _| | |_) | | | | | | |/ _ \\ \\___ \\| |_| |",
	"|  _ <| |___|  __/| |_| | |_| / ___ \\ ___) |  _  |",
	"|_| \\_\\_____|_|    \\___/|____/_/   \\_\\____/|_| |_|",
}

// RenderBannerLines returns the styled banner, with a warning line in dry-run mode
func RenderBannerLines(dryRun bool) []string {
	bannerStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	if dryRun {
		lines = append(lines, "")
		warningStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)
		lines = append(lines, warningStyle.Render("⚠ DRY RUN: mutating commands are printed, not run"))
	}

	return lines
}
