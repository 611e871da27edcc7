package app

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/wahlandcase/attuned.repodash/internal/logging"
	"github.com/wahlandcase/attuned.repodash/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// statusLoadedMsg carries the result of an async status load
type statusLoadedMsg struct {
	status models.RepoStatus
	err    error
}

func loadStatusCmd(ctx context.Context, source StatusSource) tea.Cmd {
	return func() tea.Msg {
		st, err := source.Get(ctx)
		return statusLoadedMsg{status: st, err: err}
	}
}

// Run shows the dashboard until the operator picks an action
func Run(ctx context.Context, opts Options) (Action, error) {
	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return ActionQuit, fmt.Errorf("dashboard: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return ActionQuit, nil
	}
	logging.Logger.Debug("Dashboard closed", "action", m.Chosen().String())
	return m.Chosen(), nil
}

// OpenURL opens url in the default browser
func OpenURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default: // Linux and others
		if isWSL() {
			// WSL: hand the URL to the Windows side
			if _, err := exec.LookPath("wslview"); err == nil {
				cmd = exec.Command("wslview", url)
			} else {
				cmd = exec.Command("cmd.exe", "/c", "start", strings.ReplaceAll(url, "&", "^&"))
			}
		} else {
			cmd = exec.Command("xdg-open", url)
		}
	}

	logging.Logger.Debug("Opening URL", "url", url, "cmd", cmd.Path)
	return cmd.Start()
}

// isWSL checks if running under Windows Subsystem for Linux
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}
