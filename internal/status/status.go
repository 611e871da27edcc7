// Package status builds RepoStatus snapshots from read-only git queries.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wahlandcase/attuned.repodash/internal/git"
	"github.com/wahlandcase/attuned.repodash/internal/logging"
	"github.com/wahlandcase/attuned.repodash/internal/models"

	"golang.org/x/sync/errgroup"
)

// RecentLogSize is the number of commits shown in the recent log panel
const RecentLogSize = 5

// Aggregator issues the status queries for one working copy
type Aggregator struct {
	git *git.Client
	now func() time.Time
}

// New creates an Aggregator
func New(client *git.Client) *Aggregator {
	return &Aggregator{git: client, now: time.Now}
}

// Get runs all status queries concurrently and assembles a snapshot.
// Ahead/behind queries that exit non-zero (usually a missing upstream) yield
// empty lists; any other failure fails the whole snapshot.
func (a *Aggregator) Get(ctx context.Context) (models.RepoStatus, error) {
	logging.Logger.Debug("Fetching repo status", "upstream", a.git.Upstream())

	st := models.RepoStatus{Upstream: a.git.Upstream()}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		changes, err := a.git.Porcelain(gctx)
		if err != nil {
			return fmt.Errorf("reading working tree status: %w", err)
		}
		st.Changes = changes
		st.HasUncommittedChanges = len(changes) > 0
		return nil
	})

	g.Go(func() error {
		commits, err := a.git.LocalOnlyCommits(gctx)
		if err != nil {
			if degradable(gctx, err) {
				logging.Logger.Debug("Failed to list local-only commits", "error", err)
				return nil
			}
			return fmt.Errorf("listing local-only commits: %w", err)
		}
		st.LocalOnlyCommits = commits
		return nil
	})

	g.Go(func() error {
		commits, err := a.git.RemoteOnlyCommits(gctx)
		if err != nil {
			if degradable(gctx, err) {
				logging.Logger.Debug("Failed to list remote-only commits", "error", err)
				return nil
			}
			return fmt.Errorf("listing remote-only commits: %w", err)
		}
		st.RemoteOnlyCommits = commits
		return nil
	})

	g.Go(func() error {
		local, err := a.git.LocalBranches(gctx)
		if err != nil {
			return fmt.Errorf("listing local branches: %w", err)
		}
		remote, err := a.git.RemoteBranches(gctx)
		if err != nil {
			return fmt.Errorf("listing remote branches: %w", err)
		}
		st.LocalBranches = local
		st.RemoteBranches = remote
		return nil
	})

	g.Go(func() error {
		log, err := a.git.RecentLog(gctx, RecentLogSize)
		if err != nil {
			return fmt.Errorf("reading recent log: %w", err)
		}
		st.RecentLog = log
		return nil
	})

	g.Go(func() error {
		branch, err := a.git.CurrentBranch(gctx)
		if err != nil {
			// Older git without --show-current, or a fresh repo
			logging.Logger.Debug("Failed to read current branch", "error", err)
			return nil
		}
		st.CurrentBranch = branch
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.RepoStatus{}, err
	}
	st.FetchedAt = a.now()

	logging.Logger.Debug("Repo status fetched",
		"changes", len(st.Changes),
		"localOnly", len(st.LocalOnlyCommits),
		"remoteOnly", len(st.RemoteOnlyCommits),
		"branch", st.CurrentBranch)

	return st, nil
}

// degradable reports whether err is a plain non-zero git exit rather than
// a cancellation or a failure to start git at all
func degradable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var cmdErr *models.CommandError
	return errors.As(err, &cmdErr) && cmdErr.ExitCode > 0
}
