package git

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wahlandcase/attuned.repodash/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRoot walks up from start until it finds a git repository
func FindRoot(start string) (string, error) {
	path, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if IsGitRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", os.ErrNotExist
		}
		path = parent
	}
}

// DetectMainBranch determines if the repo uses "main" or "master"
func DetectMainBranch(repoPath, remote string) string {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return "main"
	}

	refs, err := repo.References()
	if err != nil {
		return "main"
	}

	hasRemoteMain := false
	hasRemoteMaster := false
	hasLocalMain := false
	hasLocalMaster := false

	remotePrefix := "refs/remotes/" + remote + "/"
	refs.ForEach(func(ref *plumbing.Reference) error {
		switch ref.Name().String() {
		case remotePrefix + "main":
			hasRemoteMain = true
		case remotePrefix + "master":
			hasRemoteMaster = true
		case "refs/heads/main":
			hasLocalMain = true
		case "refs/heads/master":
			hasLocalMaster = true
		}
		return nil
	})

	// Prefer remote refs
	if hasRemoteMain {
		return "main"
	}
	if hasRemoteMaster {
		return "master"
	}

	// Fall back to local refs
	if hasLocalMain {
		return "main"
	}
	if hasLocalMaster {
		return "master"
	}

	return "main"
}

// RemoteURL returns the first configured URL of remote
func RemoteURL(repoPath, remote string) (string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return "", err
	}

	r, err := repo.Remote(remote)
	if err != nil {
		return "", err
	}

	urls := r.Config().URLs
	if len(urls) == 0 {
		return "", errors.New("remote " + remote + " has no URL")
	}
	return urls[0], nil
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
	Err     error
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// BranchNotFoundError indicates a branch does not exist locally or on the remote
type BranchNotFoundError struct {
	Branches []string
}

func (e *BranchNotFoundError) Error() string {
	return "Branch not found: " + strings.Join(e.Branches, ", ")
}

// newGitError builds a GitError from a failed result
func newGitError(command string, res models.Result) error {
	cmd := res.Command()
	output := strings.TrimSpace(cmd.Stderr)
	if output == "" {
		output = strings.TrimSpace(cmd.Stdout)
	}
	if output == "" {
		output = "exited with status " + strconv.Itoa(cmd.ExitCode)
	}
	return &GitError{Command: command, Output: output, Err: models.Err(res)}
}
