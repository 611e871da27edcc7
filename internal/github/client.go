package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/wahlandcase/attuned.repodash/internal/models"
	"github.com/wahlandcase/attuned.repodash/internal/runner"
)

// ErrNotAuthenticated is returned when `gh auth status` fails
var ErrNotAuthenticated = errors.New("not authenticated with GitHub CLI. Run 'gh auth login' first")

// Client drives the gh CLI through a runner
type Client struct {
	run runner.Runner
}

// NewClient creates a gh client
func NewClient(r runner.Runner) *Client {
	return &Client{run: r}
}

// CheckAuth verifies gh CLI is authenticated
func (c *Client) CheckAuth(ctx context.Context) error {
	res := c.run.Run(ctx, "gh", "auth", "status")
	if models.IsFailed(res) {
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, models.Err(res))
	}
	return nil
}

// CreatePR creates a new pull request
func (c *Client) CreatePR(ctx context.Context, headBranch, baseBranch, title, body string) (*models.GhPr, error) {
	res := c.run.Run(ctx, "gh", "pr", "create",
		"--head", headBranch,
		"--base", baseBranch,
		"--title", title,
		"--body", body,
	)
	if models.IsFailed(res) {
		return nil, fmt.Errorf("gh pr create failed: %w", models.Err(res))
	}

	// gh pr create prints the URL last
	lines := strings.Split(models.Output(res), "\n")
	prURL := strings.TrimSpace(lines[len(lines)-1])

	// Extract PR number from URL (e.g., https://github.com/org/repo/pull/123)
	parts := strings.Split(prURL, "/")
	var number uint64
	if len(parts) > 0 {
		number, _ = strconv.ParseUint(parts[len(parts)-1], 10, 64)
	}

	return &models.GhPr{
		Number: number,
		URL:    prURL,
		Title:  title,
		State:  "open",
	}, nil
}

// ParseRepoSlug extracts "owner/repo" from a GitHub remote URL.
// Accepts https://github.com/owner/repo(.git), git@github.com:owner/repo(.git)
// and ssh://git@github.com/owner/repo(.git).
func ParseRepoSlug(remoteURL string) (string, error) {
	raw := strings.TrimSpace(remoteURL)
	if raw == "" {
		return "", errors.New("repository URL is empty")
	}

	var path string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("invalid repository URL %q: %w", raw, err)
		}
		path = u.Path
	case strings.Contains(raw, ":"):
		// scp-like syntax: user@host:owner/repo
		path = raw[strings.Index(raw, ":")+1:]
	default:
		return "", fmt.Errorf("unrecognized repository URL %q", raw)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("repository URL %q does not name owner/repo", raw)
	}
	return parts[0] + "/" + parts[1], nil
}

// CompareURL returns the web page that opens a pull request from head into base
func CompareURL(slug, base, head string) string {
	return fmt.Sprintf("https://github.com/%s/compare/%s...%s?expand=1", slug, base, head)
}
