package orchestrator

import (
	"context"
	"fmt"

	"github.com/wahlandcase/attuned.repodash/internal/github"
	"github.com/wahlandcase/attuned.repodash/internal/models"
)

// CreateBranchAndPR creates a timestamped feature branch from HEAD, commits
// (allowing an empty commit), pushes it and opens a pull request link.
// It refuses with ErrUnsafeBranch, issuing no git command, when st shows
// uncommitted changes or local-only commits. If staging, committing or
// pushing fails it switches back to the branch it started from and keeps
// the new branch locally.
func (o *Orchestrator) CreateBranchAndPR(ctx context.Context, st models.RepoStatus) (models.BranchPR, error) {
	if !st.IsClean() {
		return models.BranchPR{}, ErrUnsafeBranch
	}

	slug, slugErr := github.ParseRepoSlug(o.cfg.RepositoryURL)
	if slugErr != nil && !o.cfg.UseGH {
		return models.BranchPR{}, fmt.Errorf("building pull request link: %w", slugErr)
	}

	branch := o.cfg.BranchPrefix + o.now().Format(branchTimeLayout)
	result := models.BranchPR{Branch: branch}
	message := "chore: automatic update on " + branch

	o.log.Info("Creating feature branch", "branch", branch)

	if err := o.git.CheckoutNewBranch(ctx, branch); err != nil {
		return result, fmt.Errorf("creating branch %s: %w", branch, err)
	}
	if err := o.git.AddAll(ctx); err != nil {
		return result, o.leaveBranch(ctx, st, branch, fmt.Errorf("staging changes on %s: %w", branch, err))
	}
	if err := o.git.Commit(ctx, message, true); err != nil {
		return result, o.leaveBranch(ctx, st, branch, fmt.Errorf("committing on %s: %w", branch, err))
	}
	if err := o.git.Push(ctx, branch); err != nil {
		return result, o.leaveBranch(ctx, st, branch, fmt.Errorf("pushing %s: %w", branch, err))
	}

	if o.cfg.UseGH && o.gh != nil {
		pr, err := o.gh.CreatePR(ctx, branch, o.cfg.MainBranch, message, "Automated update created by repodash.")
		if err == nil {
			result.URL = pr.URL
			result.CreatedWithGH = true
		} else if slugErr != nil {
			return result, err
		} else {
			o.log.Warn("gh pr create failed, falling back to compare link", "error", err)
		}
	}
	if result.URL == "" {
		if slugErr != nil {
			return result, fmt.Errorf("building pull request link: %w", slugErr)
		}
		result.URL = github.CompareURL(slug, o.cfg.MainBranch, branch)
	}

	if err := o.open(result.URL); err != nil {
		o.log.Warn("Failed to open browser", "url", result.URL, "error", err)
	}
	return result, nil
}

// leaveBranch checks out the branch st was taken on after a failure on
// branch, and says in the returned error where the working copy ended up.
func (o *Orchestrator) leaveBranch(ctx context.Context, st models.RepoStatus, branch string, cause error) error {
	original := st.CurrentBranch
	if original == "" {
		original = o.cfg.MainBranch
	}
	if err := o.git.Checkout(ctx, original); err != nil {
		o.log.Warn("Failed to switch back", "branch", original, "error", err)
		return fmt.Errorf("%w (still on %s)", cause, branch)
	}
	return fmt.Errorf("%w (switched back to %s, %s kept locally)", cause, original, branch)
}
