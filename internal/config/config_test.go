package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "main", cfg.Repo.MainBranch)
	assert.Equal(t, "origin", cfg.Repo.Remote)
	assert.Equal(t, "feature/auto-", cfg.PR.BranchPrefix)
	assert.Equal(t, []string{"app", "infra", "tests", "docs", ".github/workflows"}, cfg.Scaffold.Folders)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "repodash.toml")

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	_, err = os.Stat(path)
	assert.NoError(t, err, "defaults saved")
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repodash.toml")
	content := `
[repo]
main_branch = "auto"
repository_url = "git@github.com:acme/tool.git"

[pr]
use_gh = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.True(t, cfg.AutoDetectBranch())
	assert.Equal(t, "origin", cfg.Repo.Remote)
	assert.Equal(t, "git@github.com:acme/tool.git", cfg.Repo.RepositoryURL)
	assert.True(t, cfg.PR.UseGH)
	assert.Equal(t, "feature/auto-", cfg.PR.BranchPrefix)
	assert.Len(t, cfg.Scaffold.Folders, 5)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repodash.toml")
	require.NoError(t, os.WriteFile(path, []byte("[repo\nmain_branch = "), 0644))

	_, err := LoadFrom(path)

	assert.Error(t, err)
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repodash.toml")
	require.NoError(t, os.WriteFile(path, []byte("[repo]\nremote = \"\"\n[pr]\nbranch_prefix = \" \"\n"), 0644))

	_, err := LoadFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "repo.remote")
	assert.Contains(t, err.Error(), "pr.branch_prefix")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repodash.toml")
	cfg := DefaultConfig()
	cfg.Repo.MainBranch = "master"
	cfg.Scaffold.Folders = []string{"src"}

	require.NoError(t, cfg.SaveTo(path))
	loaded, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(EnvPath, want)

	got, err := Path()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepoPath_ExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Repo.Path = "~/src/tool"

	assert.Equal(t, filepath.Join(home, "src", "tool"), cfg.RepoPath())
}
