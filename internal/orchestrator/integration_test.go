package orchestrator

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wahlandcase/attuned.repodash/internal/git"
	"github.com/wahlandcase/attuned.repodash/internal/prompt"
	"github.com/wahlandcase/attuned.repodash/internal/runner"
	"github.com/wahlandcase/attuned.repodash/internal/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	gitOutput(t, dir, args...)
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return string(out)
}

func writeAndCommit(t *testing.T, dir, name, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", message)
}

// setupClones returns two working copies of one bare remote, both on main
func setupClones(t *testing.T) (local, other string) {
	t.Helper()
	root := t.TempDir()
	remote := filepath.Join(root, "remote.git")
	seed := filepath.Join(root, "seed")

	runGit(t, root, "init", "--bare", remote)
	runGit(t, remote, "symbolic-ref", "HEAD", "refs/heads/main")
	require.NoError(t, os.MkdirAll(seed, 0755))
	runGit(t, seed, "init")
	runGit(t, seed, "symbolic-ref", "HEAD", "refs/heads/main")
	writeAndCommit(t, seed, "README.md", "# Test\n", "Initial commit")
	runGit(t, seed, "remote", "add", "origin", remote)
	runGit(t, seed, "push", "origin", "main")

	local = filepath.Join(root, "local")
	other = filepath.Join(root, "other")
	runGit(t, root, "clone", remote, local)
	runGit(t, root, "clone", remote, other)
	for _, dir := range []string{local, other} {
		runGit(t, dir, "config", "user.email", "test@test.com")
		runGit(t, dir, "config", "user.name", "Test")
	}
	return local, other
}

func TestIntegration_SyncRepoStashesAndRestores(t *testing.T) {
	requireGit(t)
	local, other := setupClones(t)
	ctx := context.Background()

	writeAndCommit(t, other, "remote.txt", "from other\n", "remote change")
	runGit(t, other, "push", "origin", "main")

	require.NoError(t, os.WriteFile(filepath.Join(local, "README.md"), []byte("# Edited locally\n"), 0644))

	client := git.NewClient(runner.New(local), "origin", "main")
	o := New(Config{Root: local}, Dependencies{
		Git:      client,
		Prompter: prompt.NewScript(true, true),
		RunID:    "it",
	})

	report, err := o.SyncRepo(ctx)

	require.NoError(t, err)
	assert.True(t, report.Succeeded(), "%+v", report.Outcomes)
	assert.True(t, report.Stashed)

	_, err = os.Stat(filepath.Join(local, "remote.txt"))
	assert.NoError(t, err, "remote commit pulled")
	data, err := os.ReadFile(filepath.Join(local, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Edited locally\n", string(data), "stashed edit restored")
}

func TestIntegration_SyncCommitsPushesLocalWork(t *testing.T) {
	requireGit(t)
	local, other := setupClones(t)
	ctx := context.Background()

	writeAndCommit(t, local, "a.txt", "a", "local one")
	writeAndCommit(t, local, "b.txt", "b", "local two")

	client := git.NewClient(runner.New(local), "origin", "main")
	st, err := status.New(client).Get(ctx)
	require.NoError(t, err)
	require.Len(t, st.LocalOnlyCommits, 2)
	require.Empty(t, st.RemoteOnlyCommits)

	report := New(Config{}, Dependencies{Git: client}).SyncCommits(ctx, st)
	require.True(t, report.Succeeded(), "%+v", report.Outcomes)

	runGit(t, other, "pull", "origin", "main")
	_, err = os.Stat(filepath.Join(other, "b.txt"))
	assert.NoError(t, err)

	after, err := status.New(client).Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, after.LocalOnlyCommits)
}

func TestIntegration_SyncCommitsPushesCurrentBranch(t *testing.T) {
	requireGit(t)
	local, _ := setupClones(t)
	ctx := context.Background()

	runGit(t, local, "checkout", "-b", "feature/x")
	writeAndCommit(t, local, "a.txt", "a", "feature one")
	writeAndCommit(t, local, "b.txt", "b", "feature two")

	client := git.NewClient(runner.New(local), "origin", "main")
	st, err := status.New(client).Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "feature/x", st.CurrentBranch)
	require.Len(t, st.LocalOnlyCommits, 2)

	report := New(Config{}, Dependencies{Git: client}).SyncCommits(ctx, st)
	require.True(t, report.Succeeded(), "%+v", report.Outcomes)

	heads := gitOutput(t, local, "ls-remote", "--heads", "origin")
	assert.Contains(t, heads, "refs/heads/feature/x")

	localHead := strings.TrimSpace(gitOutput(t, local, "rev-parse", "HEAD"))
	remoteHead := strings.TrimSpace(gitOutput(t, local, "rev-parse", "origin/feature/x"))
	assert.Equal(t, localHead, remoteHead)

	mainTip := strings.TrimSpace(gitOutput(t, local, "rev-parse", "origin/main"))
	assert.NotEqual(t, localHead, mainTip, "main line untouched")
}
