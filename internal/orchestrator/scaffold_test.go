package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/wahlandcase/attuned.repodash/internal/mocks"
	"github.com/wahlandcase/attuned.repodash/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold_CreatesDefaultFolders(t *testing.T) {
	root := t.TempDir()
	h := newHarness(t, mocks.NewRunner(), prompt.NewScript(), Config{Root: root})

	created, err := h.orch.Scaffold(context.Background())

	require.NoError(t, err)
	assert.Len(t, created, len(DefaultFolders))
	for _, folder := range DefaultFolders {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(folder), KeepFile))
		require.NoError(t, err, folder)
		assert.Zero(t, info.Size())
	}
	assert.Contains(t, created, filepath.Join(".github", "workflows", KeepFile))
	assert.Empty(t, h.runner.Calls, "scaffold does not go through git")
}

func TestScaffold_SkipsExistingMarkers(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", KeepFile), []byte("keep"), 0644))
	h := newHarness(t, mocks.NewRunner(), prompt.NewScript(), Config{Root: root, Folders: []string{"app", "docs"}})

	created, err := h.orch.Scaffold(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("app", KeepFile)}, created)

	data, err := os.ReadFile(filepath.Join(root, "docs", KeepFile))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	again, err := h.orch.Scaffold(context.Background())
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestScaffold_RejectsEscapingFolders(t *testing.T) {
	for _, folder := range []string{"../outside", "/abs", ".", ""} {
		h := newHarness(t, mocks.NewRunner(), prompt.NewScript(), Config{Root: t.TempDir(), Folders: []string{folder}})

		_, err := h.orch.Scaffold(context.Background())

		assert.Error(t, err, folder)
	}
}

func TestScaffold_CancelledContext(t *testing.T) {
	h := newHarness(t, mocks.NewRunner(), prompt.NewScript(), Config{Root: t.TempDir()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	created, err := h.orch.Scaffold(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, created)
}
