package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/wahlandcase/attuned.repodash/internal/models"
	"github.com/wahlandcase/attuned.repodash/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	ui.DisableColor()
	os.Exit(m.Run())
}

type fakeSource struct {
	status models.RepoStatus
	err    error
	calls  int
}

func (f *fakeSource) Get(context.Context) (models.RepoStatus, error) {
	f.calls++
	return f.status, f.err
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func loaded(t *testing.T, src *fakeSource) Model {
	t.Helper()
	m := New(context.Background(), Options{Source: src, MainBranch: "main"})
	msg := loadStatusCmd(context.Background(), src)()
	m, _ = send(t, m, msg)
	return m
}

func TestModel_StartsLoading(t *testing.T) {
	m := New(context.Background(), Options{Source: &fakeSource{}})

	assert.Equal(t, ScreenLoading, m.Screen())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading repository status")
}

func TestModel_StatusLoaded(t *testing.T) {
	src := &fakeSource{status: models.RepoStatus{CurrentBranch: "main", Upstream: "origin/main"}}

	m := loaded(t, src)

	assert.Equal(t, ScreenDashboard, m.Screen())
	st, ok := m.Status()
	require.True(t, ok)
	assert.Equal(t, "main", st.CurrentBranch)
	view := m.View()
	assert.Contains(t, view, "STATUS")
	assert.Contains(t, view, "Sync repository")
}

func TestModel_StatusError(t *testing.T) {
	src := &fakeSource{err: errors.New("not a git repository")}

	m := loaded(t, src)

	assert.Equal(t, ScreenError, m.Screen())
	assert.Contains(t, m.View(), "not a git repository")

	m, cmd := send(t, m, key("r"))
	assert.Equal(t, ScreenLoading, m.Screen())
	assert.NotNil(t, cmd)
}

func TestModel_NumberKeyChoosesAction(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, cmd := send(t, m, key("2"))

	assert.Equal(t, ActionSync, m.Chosen())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_ArrowNavigationWraps(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, _ = send(t, m, key("up"))
	m, _ = send(t, m, key("enter"))

	assert.Equal(t, ActionQuit, m.Chosen())
}

func TestModel_DownThenEnter(t *testing.T) {
	m := loaded(t, &fakeSource{})

	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("enter"))

	assert.Equal(t, ActionSyncCommits, m.Chosen())
}

func TestModel_RefreshReloadsInPlace(t *testing.T) {
	src := &fakeSource{}
	m := loaded(t, src)

	m, cmd := send(t, m, key("1"))

	assert.Equal(t, ActionNone, m.Chosen())
	assert.Equal(t, ScreenLoading, m.Screen())
	assert.NotNil(t, cmd)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := New(context.Background(), Options{Source: &fakeSource{}})

	m, _ = send(t, m, key("ctrl+c"))

	assert.Equal(t, ActionQuit, m.Chosen())
}

func TestModel_NoticeAndDryRun(t *testing.T) {
	src := &fakeSource{}
	m := New(context.Background(), Options{Source: src, DryRun: true, Notice: "Sync finished"})
	m, _ = send(t, m, loadStatusCmd(context.Background(), src)())

	view := m.View()

	assert.Contains(t, view, "DRY RUN")
	assert.Contains(t, view, "Sync finished")
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Branch + PR", ActionBranchPR.String())
	assert.Equal(t, "None", ActionNone.String())
}
