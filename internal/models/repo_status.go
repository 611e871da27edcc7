package models

import "time"

// RepoStatus is a point-in-time snapshot of the working copy.
// It is never mutated after construction; take a fresh one before each action.
type RepoStatus struct {
	// HasUncommittedChanges is true if `git status --porcelain` printed anything
	HasUncommittedChanges bool
	// Changes are the raw porcelain lines
	Changes []string
	// LocalOnlyCommits are on HEAD but not on the upstream, newest first
	LocalOnlyCommits []CommitInfo
	// RemoteOnlyCommits are on the upstream but not on HEAD, newest first
	RemoteOnlyCommits []CommitInfo
	LocalBranches     []string
	// RemoteBranches excludes symbolic entries such as "origin/HEAD -> origin/main"
	RemoteBranches []string
	// RecentLog holds the 5 most recent commits on the current branch
	RecentLog []CommitInfo
	// CurrentBranch is empty on a detached HEAD
	CurrentBranch string
	// Upstream is the ref used for ahead/behind, e.g. "origin/main"
	Upstream  string
	FetchedAt time.Time
}

// IsClean returns true if there is nothing uncommitted and nothing unpushed
func (s RepoStatus) IsClean() bool {
	return !s.HasUncommittedChanges && len(s.LocalOnlyCommits) == 0
}

// Diverged returns true if both sides have commits the other lacks
func (s RepoStatus) Diverged() bool {
	return len(s.LocalOnlyCommits) > 0 && len(s.RemoteOnlyCommits) > 0
}
