package app

import (
	"context"

	"github.com/wahlandcase/attuned.repodash/internal/models"
	"github.com/wahlandcase/attuned.repodash/internal/ui"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusSource produces status snapshots
type StatusSource interface {
	Get(ctx context.Context) (models.RepoStatus, error)
}

// Options configure the dashboard
type Options struct {
	Source     StatusSource
	MainBranch string
	RepoPath   string
	DryRun     bool
	// Notice is shown above the menu, e.g. the summary of the last action
	Notice string
}

// Model is the dashboard state
type Model struct {
	ctx    context.Context
	source StatusSource

	mainBranch string
	repoPath   string
	dryRun     bool
	notice     string

	// Navigation
	screen    Screen
	menuIndex int
	chosen    Action

	// Status
	status  *models.RepoStatus
	err     error
	spinner spinner.Model

	// Window size
	width  int
	height int
}

// New creates a dashboard model
func New(ctx context.Context, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.ColorCyan)

	return Model{
		ctx:        ctx,
		source:     opts.Source,
		mainBranch: opts.MainBranch,
		repoPath:   opts.RepoPath,
		dryRun:     opts.DryRun,
		notice:     opts.Notice,
		screen:     ScreenLoading,
		spinner:    s,
		width:      100,
		height:     30,
	}
}

// Init starts the first status load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadStatusCmd(m.ctx, m.source),
	)
}

// Chosen returns the action the dashboard exited with
func (m Model) Chosen() Action {
	return m.chosen
}

// Status returns the last loaded snapshot, if any
func (m Model) Status() (models.RepoStatus, bool) {
	if m.status == nil {
		return models.RepoStatus{}, false
	}
	return *m.status, true
}

// Screen returns the current screen
func (m Model) Screen() Screen {
	return m.screen
}
