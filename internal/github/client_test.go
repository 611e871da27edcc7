package github

import (
	"context"
	"testing"

	"github.com/wahlandcase/attuned.repodash/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoSlug(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"https with .git", "https://github.com/mirelabsp/DevOps-Lab-AWS.git", "mirelabsp/DevOps-Lab-AWS"},
		{"https without .git", "https://github.com/acme/tool", "acme/tool"},
		{"https trailing slash", "https://github.com/acme/tool/", "acme/tool"},
		{"scp-like ssh", "git@github.com:acme/tool.git", "acme/tool"},
		{"ssh scheme", "ssh://git@github.com/acme/tool.git", "acme/tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoSlug(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRepoSlug_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not-a-url", "https://github.com/only-owner", "https://github.com/a/b/c"} {
		_, err := ParseRepoSlug(raw)
		assert.Error(t, err, raw)
	}
}

func TestCompareURL(t *testing.T) {
	got := CompareURL("acme/tool", "main", "feature/auto-20260102-030405")
	assert.Equal(t, "https://github.com/acme/tool/compare/main...feature/auto-20260102-030405?expand=1", got)
}

func TestCheckAuth(t *testing.T) {
	ok := NewClient(mocks.NewRunner())
	assert.NoError(t, ok.CheckAuth(context.Background()))

	bad := NewClient(mocks.NewRunner().OnFail("gh auth status", 1, "You are not logged into any GitHub hosts"))
	assert.ErrorIs(t, bad.CheckAuth(context.Background()), ErrNotAuthenticated)
}

func TestCreatePR(t *testing.T) {
	r := mocks.NewRunner().OnOutput("gh pr create", "Creating pull request\nhttps://github.com/acme/tool/pull/42\n")
	c := NewClient(r)

	pr, err := c.CreatePR(context.Background(), "feature/x", "main", "title", "body")

	require.NoError(t, err)
	assert.Equal(t, uint64(42), pr.Number)
	assert.Equal(t, "https://github.com/acme/tool/pull/42", pr.URL)
	assert.Equal(t, 1, r.Count("gh pr create --head feature/x --base main"))
}

func TestCreatePR_Failure(t *testing.T) {
	c := NewClient(mocks.NewRunner().OnFail("gh pr create", 1, "no commits between main and feature/x"))

	_, err := c.CreatePR(context.Background(), "feature/x", "main", "t", "b")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no commits between")
}
