package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/wahlandcase/attuned.repodash/internal/models"
	"github.com/wahlandcase/attuned.repodash/internal/runner"
)

// NoLocalChangesMarker is printed by `git stash` when there was nothing to stash
const NoLocalChangesMarker = "No local changes to save"

// Client issues git commands for one working copy through a runner
type Client struct {
	run        runner.Runner
	remote     string
	mainBranch string
}

// NewClient creates a Client. remote and mainBranch define the upstream
// used for ahead/behind queries, pulls and pushes.
func NewClient(r runner.Runner, remote, mainBranch string) *Client {
	if remote == "" {
		remote = "origin"
	}
	if mainBranch == "" {
		mainBranch = "main"
	}
	return &Client{run: r, remote: remote, mainBranch: mainBranch}
}

// Remote returns the remote name
func (c *Client) Remote() string { return c.remote }

// MainBranch returns the tracked main line
func (c *Client) MainBranch() string { return c.mainBranch }

// Upstream returns the remote-tracking ref for the main line, e.g. "origin/main"
func (c *Client) Upstream() string {
	return c.remote + "/" + c.mainBranch
}

func (c *Client) git(ctx context.Context, args ...string) models.Result {
	return c.run.Run(ctx, "git", args...)
}

// exec runs a git command and converts failure into a *GitError
func (c *Client) exec(ctx context.Context, command string, args ...string) (models.Result, error) {
	res := c.git(ctx, args...)
	if models.IsFailed(res) {
		return res, newGitError(command, res)
	}
	return res, nil
}

// Porcelain returns the lines of `git status --porcelain`
func (c *Client) Porcelain(ctx context.Context) ([]string, error) {
	res, err := c.exec(ctx, "status", "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return splitLines(res.Command().Stdout), nil
}

// LocalOnlyCommits returns commits on HEAD that are not on the upstream
func (c *Client) LocalOnlyCommits(ctx context.Context) ([]models.CommitInfo, error) {
	return c.logRange(ctx, c.Upstream()+"..HEAD")
}

// RemoteOnlyCommits returns commits on the upstream that are not on HEAD
func (c *Client) RemoteOnlyCommits(ctx context.Context) ([]models.CommitInfo, error) {
	return c.logRange(ctx, "HEAD.."+c.Upstream())
}

func (c *Client) logRange(ctx context.Context, rangeSpec string) ([]models.CommitInfo, error) {
	res, err := c.exec(ctx, "log", "log", rangeSpec, "--oneline")
	if err != nil {
		return nil, err
	}
	return models.ParseOnelineLog(res.Command().Stdout), nil
}

// RecentLog returns the n most recent commits on the current branch, decorated
func (c *Client) RecentLog(ctx context.Context, n int) ([]models.CommitInfo, error) {
	res, err := c.exec(ctx, "log", "log", "-"+strconv.Itoa(n), "--oneline", "--decorate")
	if err != nil {
		return nil, err
	}
	return models.ParseOnelineLog(res.Command().Stdout), nil
}

// LocalBranches returns the short names of local branches
func (c *Client) LocalBranches(ctx context.Context) ([]string, error) {
	res, err := c.exec(ctx, "branch", "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return trimmedLines(res.Command().Stdout), nil
}

// RemoteBranches returns remote-tracking branches, skipping symbolic refs
func (c *Client) RemoteBranches(ctx context.Context) ([]string, error) {
	res, err := c.exec(ctx, "branch", "branch", "-r")
	if err != nil {
		return nil, err
	}

	var branches []string
	for _, b := range trimmedLines(res.Command().Stdout) {
		if strings.Contains(b, "->") {
			continue
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// CurrentBranch returns the checked-out branch, or "" on a detached HEAD
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	res, err := c.exec(ctx, "branch", "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return models.Output(res), nil
}

// Checkout switches to an existing branch
func (c *Client) Checkout(ctx context.Context, branch string) error {
	res, err := c.exec(ctx, "checkout", "checkout", branch)
	if err != nil {
		stderr := res.Command().Stderr
		if strings.Contains(stderr, "did not match any file(s) known to git") ||
			strings.Contains(stderr, "invalid reference") {
			return &BranchNotFoundError{Branches: []string{branch}}
		}
		return err
	}
	return nil
}

// CheckoutNewBranch creates branch from HEAD and switches to it
func (c *Client) CheckoutNewBranch(ctx context.Context, branch string) error {
	_, err := c.exec(ctx, "checkout", "checkout", "-b", branch)
	return err
}

// Stash sets aside uncommitted changes. created is false if git reported
// that there was nothing to stash.
func (c *Client) Stash(ctx context.Context, message string) (created bool, err error) {
	args := []string{"stash", "push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	res, err := c.exec(ctx, "stash", args...)
	if err != nil {
		return false, err
	}
	return !strings.Contains(res.Command().Stdout, NoLocalChangesMarker), nil
}

// StashPop restores the most recent stash entry
func (c *Client) StashPop(ctx context.Context) error {
	_, err := c.exec(ctx, "stash pop", "stash", "pop")
	return err
}

// PullRebase fetches the main line and replays local commits on top of it
func (c *Client) PullRebase(ctx context.Context) error {
	_, err := c.exec(ctx, "pull", "pull", c.remote, c.mainBranch, "--rebase")
	return err
}

// Push pushes branch to the remote
func (c *Client) Push(ctx context.Context, branch string) error {
	_, err := c.exec(ctx, "push", "push", c.remote, branch)
	return err
}

// AddAll stages every change in the working tree
func (c *Client) AddAll(ctx context.Context) error {
	_, err := c.exec(ctx, "add", "add", ".")
	return err
}

// Commit records the index with message. allowEmpty permits a commit with no changes.
func (c *Client) Commit(ctx context.Context, message string, allowEmpty bool) error {
	args := []string{"commit", "-m", message}
	if allowEmpty {
		args = append(args, "--allow-empty")
	}
	_, err := c.exec(ctx, "commit", args...)
	return err
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func trimmedLines(s string) []string {
	lines := splitLines(s)
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}
