package orchestrator

import (
	"context"
	"fmt"

	"github.com/wahlandcase/attuned.repodash/internal/models"
)

// SyncRepo brings the main line up to date with the remote:
// checkout main, optionally stash, pull --rebase, optionally pop the stash.
//
// A checkout failure returns ErrCheckoutFailed before anything else runs.
// A rebase failure aborts the run and leaves any stash in place.
// Phase failures are reported in the SyncReport, not as an error.
func (o *Orchestrator) SyncRepo(ctx context.Context) (models.SyncReport, error) {
	var report models.SyncReport
	mainBranch := o.cfg.MainBranch

	o.log.Info("Starting sync", "main", mainBranch, "remote", o.cfg.Remote)

	if err := o.git.Checkout(ctx, mainBranch); err != nil {
		report.Add(models.PhaseCheckout, false, err.Error())
		report.Aborted = true
		return report, fmt.Errorf("%w: %s: %w", ErrCheckoutFailed, mainBranch, err)
	}
	report.Add(models.PhaseCheckout, true, "on "+mainBranch)

	changes, err := o.git.Porcelain(ctx)
	if err != nil {
		report.Aborted = true
		return report, fmt.Errorf("reading working tree status: %w", err)
	}

	if len(changes) == 0 {
		report.Skip(models.PhaseStash, "working tree clean")
	} else {
		stash, err := o.prompt.Confirm(fmt.Sprintf("%d uncommitted change(s). Stash before pulling?", len(changes)), true)
		if err != nil {
			report.Aborted = true
			return report, err
		}

		if !stash {
			report.Skip(models.PhaseStash, "stash declined")
		} else {
			created, err := o.git.Stash(ctx, "repodash "+o.runID)
			if err != nil {
				report.Add(models.PhaseStash, false, err.Error())
				report.Aborted = true
				return report, ctx.Err()
			}
			report.Stashed = created
			if created {
				report.Add(models.PhaseStash, true, "changes stashed")
			} else {
				report.Skip(models.PhaseStash, "nothing to stash")
			}
		}
	}

	if err := o.git.PullRebase(ctx); err != nil {
		msg := "rebase failed, resolve conflicts manually: " + err.Error()
		if report.Stashed {
			msg += " (stash kept)"
		}
		o.log.Warn("Rebase pull failed", "error", err, "stashed", report.Stashed)
		report.Add(models.PhaseRebasePull, false, msg)
		report.Aborted = true
		return report, ctx.Err()
	}
	report.Add(models.PhaseRebasePull, true, "rebased onto "+o.git.Upstream())

	if !report.Stashed {
		report.Skip(models.PhaseStashPop, "nothing stashed")
		return report, nil
	}

	restore, err := o.prompt.Confirm("Restore stashed changes?", true)
	if err != nil {
		return report, err
	}
	if !restore {
		report.Skip(models.PhaseStashPop, "stash kept, run git stash pop to restore it")
		return report, nil
	}

	if err := o.git.StashPop(ctx); err != nil {
		o.log.Warn("Stash pop failed", "error", err)
		report.Add(models.PhaseStashPop, false, "stash pop failed, resolve conflicts manually: "+err.Error())
		return report, ctx.Err()
	}
	report.Add(models.PhaseStashPop, true, "stashed changes restored")

	o.log.Info("Sync finished", "succeeded", report.Succeeded())
	return report, nil
}

// SyncCommits resolves divergence from a status snapshot: push the current
// branch if there are local-only commits, pull --rebase if there are
// remote-only commits. A detached HEAD pushes the main line.
// Both are attempted independently; the report succeeds only if both do.
func (o *Orchestrator) SyncCommits(ctx context.Context, st models.RepoStatus) models.SyncReport {
	var report models.SyncReport

	if n := len(st.LocalOnlyCommits); n > 0 {
		branch := st.CurrentBranch
		if branch == "" {
			branch = o.cfg.MainBranch
		}
		if err := o.git.Push(ctx, branch); err != nil {
			o.log.Warn("Push failed", "branch", branch, "error", err)
			report.Add(models.PhasePush, false, "push failed: "+err.Error())
		} else {
			report.Add(models.PhasePush, true, fmt.Sprintf("pushed %d commit(s) to %s/%s", n, o.cfg.Remote, branch))
		}
	} else {
		report.Skip(models.PhasePush, "no local-only commits")
	}

	if n := len(st.RemoteOnlyCommits); n > 0 {
		if err := o.git.PullRebase(ctx); err != nil {
			o.log.Warn("Divergence pull failed", "error", err)
			report.Add(models.PhaseDivergencePull, false, "pull failed: "+err.Error())
		} else {
			report.Add(models.PhaseDivergencePull, true, fmt.Sprintf("pulled %d commit(s)", n))
		}
	} else {
		report.Skip(models.PhaseDivergencePull, "no remote-only commits")
	}

	return report
}
