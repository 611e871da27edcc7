package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/attuned.repodash/internal/models"
)

const (
	// MaxLocalBranches is how many local branches the status panel lists
	MaxLocalBranches = 5
	// MaxRemoteBranches is how many remote branches the status panel lists
	MaxRemoteBranches = 3

	labelWidth = 22
)

func row(label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorCyan).Width(labelWidth)
	return "  " + labelStyle.Render(label) + value
}

func count(n int, zero, nonZero lipgloss.Color) string {
	color := zero
	if n > 0 {
		color = nonZero
	}
	return lipgloss.NewStyle().Foreground(color).Bold(n > 0).Render(fmt.Sprintf("%d", n))
}

// BranchList joins the first limit names, colored, with an ellipsis if more exist
func BranchList(names []string, limit int, mainBranch string) string {
	if len(names) == 0 {
		return lipgloss.NewStyle().Foreground(ColorDarkGray).Render("none")
	}

	shown := names
	if len(shown) > limit {
		shown = shown[:limit]
	}

	parts := make([]string, 0, len(shown)+1)
	for _, name := range shown {
		parts = append(parts, lipgloss.NewStyle().Foreground(BranchColor(name, mainBranch)).Render(name))
	}
	if len(names) > limit {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorDarkGray).Render("…"))
	}
	return strings.Join(parts, ", ")
}

// RenderStatus renders a status snapshot as a label/value table plus the recent log
func RenderStatus(st models.RepoStatus, mainBranch string) string {
	var lines []string
	lines = append(lines, SectionHeader("STATUS", ColorCyan), "")

	branch := st.CurrentBranch
	if branch == "" {
		branch = "(detached)"
	}
	branchStyle := lipgloss.NewStyle().Foreground(BranchColor(branch, mainBranch)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	lines = append(lines, row("Branch", branchStyle.Render(branch)+dimStyle.Render("  tracking "+st.Upstream)))

	changes := lipgloss.NewStyle().Foreground(ColorGreen).Render("no")
	if st.HasUncommittedChanges {
		changes = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true).
			Render(fmt.Sprintf("yes (%d)", len(st.Changes)))
	}
	lines = append(lines,
		row("Uncommitted changes", changes),
		row("Local-only commits", count(len(st.LocalOnlyCommits), ColorGreen, ColorYellow)),
		row("Remote-only commits", count(len(st.RemoteOnlyCommits), ColorGreen, ColorOrange)),
		row("Local branches", BranchList(st.LocalBranches, MaxLocalBranches, mainBranch)),
		row("Remote branches", BranchList(st.RemoteBranches, MaxRemoteBranches, mainBranch)),
	)

	if st.Diverged() {
		warn := lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
		lines = append(lines, "", "  "+warn.Render("⚠ Diverged: push and pull are both needed"))
	}

	lines = append(lines, "", RenderLog(st.RecentLog, 0))
	return strings.Join(lines, "\n")
}

// RenderLog renders commits in a titled box
func RenderLog(commits []models.CommitInfo, width int) string {
	hashStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	msgStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	var lines []string
	for _, c := range commits {
		lines = append(lines, hashStyle.Render(c.Hash)+" "+msgStyle.Render(c.Message))
	}
	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(ColorDarkGray).Render("no commits"))
	}
	return TitledBox(strings.Join(lines, "\n"), "Recent log", ColorBlue, width)
}

func outcomeState(o models.SyncOutcome) string {
	switch {
	case o.Skipped:
		return "skipped"
	case o.Succeeded:
		return "success"
	default:
		return "failed"
	}
}

// RenderReport renders one line per phase outcome followed by a summary line
func RenderReport(title string, r models.SyncReport) string {
	var lines []string
	lines = append(lines, SectionHeader(strings.ToUpper(title), ColorMagenta), "")

	phaseStyle := lipgloss.NewStyle().Width(18)
	for _, o := range r.Outcomes {
		icon, color := StatusIcon(outcomeState(o))
		msgStyle := lipgloss.NewStyle().Foreground(ColorWhite)
		if o.Skipped {
			msgStyle = msgStyle.Foreground(ColorDarkGray)
		}
		lines = append(lines, fmt.Sprintf("  %s %s%s",
			lipgloss.NewStyle().Foreground(color).Render(icon),
			phaseStyle.Render(string(o.Phase)),
			msgStyle.Render(o.Message),
		))
	}

	state, summary := "success", "Done"
	switch {
	case r.Aborted:
		state, summary = "aborted", "Aborted"
	case !r.Succeeded():
		state, summary = "failed", "Finished with failures"
	}
	if r.Stashed {
		summary += " (stash created this run)"
	}
	icon, color := StatusIcon(state)
	summaryStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	lines = append(lines, "", "  "+summaryStyle.Render(icon+" "+summary))

	return strings.Join(lines, "\n")
}

// RenderBranchPR renders the feature branch and its pull request link
func RenderBranchPR(pr models.BranchPR) string {
	urlStyle := lipgloss.NewStyle().Foreground(ColorCyan).Underline(true)
	branchStyle := lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)

	how := "compare link"
	if pr.CreatedWithGH {
		how = "opened with gh"
	}

	lines := []string{
		SectionHeader("BRANCH + PR", ColorMagenta),
		"",
		row("Branch", branchStyle.Render(pr.Branch)),
		row("Pull request", urlStyle.Render(pr.URL)),
		row("", lipgloss.NewStyle().Foreground(ColorDarkGray).Render(how)),
	}
	return strings.Join(lines, "\n")
}

// RenderScaffold lists created placeholder files
func RenderScaffold(created []string) string {
	lines := []string{SectionHeader("SCAFFOLD", ColorGreen), ""}
	if len(created) == 0 {
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorDarkGray).Render("All folders already exist"))
		return strings.Join(lines, "\n")
	}

	icon, color := StatusIcon("success")
	iconStyle := lipgloss.NewStyle().Foreground(color)
	for _, path := range created {
		lines = append(lines, "  "+iconStyle.Render(icon)+" "+path)
	}
	return strings.Join(lines, "\n")
}
