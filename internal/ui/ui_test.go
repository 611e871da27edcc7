package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/wahlandcase/attuned.repodash/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func TestBranchList_Truncates(t *testing.T) {
	names := []string{"main", "a", "b", "c", "d", "e", "f"}

	got := BranchList(names, MaxLocalBranches, "main")

	assert.Equal(t, "main, a, b, c, d, …", got)
}

func TestBranchList_ShortAndEmpty(t *testing.T) {
	assert.Equal(t, "origin/main, origin/dev", BranchList([]string{"origin/main", "origin/dev"}, MaxRemoteBranches, "main"))
	assert.Equal(t, "none", BranchList(nil, MaxRemoteBranches, "main"))
}

func TestBranchColor(t *testing.T) {
	assert.Equal(t, ColorRed, BranchColor("main", "main"))
	assert.Equal(t, ColorRed, BranchColor("origin/main", "main"))
	assert.Equal(t, ColorMagenta, BranchColor("feature/auto-1", "main"))
	assert.Equal(t, ColorWhite, BranchColor("topic", "main"))
}

func TestRenderStatus(t *testing.T) {
	st := models.RepoStatus{
		HasUncommittedChanges: true,
		Changes:               []string{" M a.go", "?? b.go"},
		LocalOnlyCommits:      []models.CommitInfo{models.NewCommitInfo("aaa111", "one")},
		RemoteOnlyCommits:     []models.CommitInfo{models.NewCommitInfo("abc123", "fix")},
		LocalBranches:         []string{"main", "b1", "b2", "b3", "b4", "b5"},
		RemoteBranches:        []string{"origin/main", "origin/r1", "origin/r2", "origin/r3"},
		RecentLog:             []models.CommitInfo{models.NewCommitInfo("aaa111", "(HEAD -> main) one")},
		CurrentBranch:         "main",
		Upstream:              "origin/main",
	}

	out := RenderStatus(st, "main")

	assert.Contains(t, out, "yes (2)")
	assert.Contains(t, out, "main, b1, b2, b3, b4, …")
	assert.NotContains(t, out, "b5")
	assert.Contains(t, out, "origin/main, origin/r1, origin/r2, …")
	assert.NotContains(t, out, "origin/r3")
	assert.Contains(t, out, "Diverged")
	assert.Contains(t, out, "Recent log")
	assert.Contains(t, out, "aaa111 (HEAD -> main) one")
	assert.Contains(t, out, "tracking origin/main")
}

func TestRenderStatus_Clean(t *testing.T) {
	out := RenderStatus(models.RepoStatus{Upstream: "origin/main"}, "main")

	assert.Contains(t, out, "(detached)")
	assert.Contains(t, out, "no commits")
	assert.NotContains(t, out, "Diverged")
}

func TestRenderReport(t *testing.T) {
	var r models.SyncReport
	r.Add(models.PhaseCheckout, true, "on main")
	r.Skip(models.PhaseStash, "working tree clean")
	r.Add(models.PhaseRebasePull, false, "rebase failed")
	r.Aborted = true

	out := RenderReport("sync", r)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "SYNC")
	assert.Contains(t, out, "✓ checkout")
	assert.Contains(t, out, "⊘ stash")
	assert.Contains(t, out, "✗ rebase-pull")
	assert.Contains(t, out, "Aborted")
}

func TestRenderReport_Success(t *testing.T) {
	var r models.SyncReport
	r.Add(models.PhasePush, true, "pushed 2 commit(s)")
	r.Skip(models.PhaseDivergencePull, "no remote-only commits")

	out := RenderReport("sync commits", r)

	assert.Contains(t, out, "✓ Done")
}

func TestRenderBranchPR(t *testing.T) {
	out := RenderBranchPR(models.BranchPR{Branch: "feature/auto-1", URL: "https://github.com/a/b/pull/1", CreatedWithGH: true})

	assert.Contains(t, out, "feature/auto-1")
	assert.Contains(t, out, "https://github.com/a/b/pull/1")
	assert.Contains(t, out, "opened with gh")
}

func TestRenderScaffold(t *testing.T) {
	assert.Contains(t, RenderScaffold(nil), "already exist")
	assert.Contains(t, RenderScaffold([]string{"docs/.gitkeep"}), "✓ docs/.gitkeep")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "…", Truncate("abcdef", 1))
}
