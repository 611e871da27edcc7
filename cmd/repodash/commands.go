package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/wahlandcase/attuned.repodash/internal/app"
	"github.com/wahlandcase/attuned.repodash/internal/orchestrator"
	"github.com/wahlandcase/attuned.repodash/internal/prompt"
	"github.com/wahlandcase/attuned.repodash/internal/ui"

	"github.com/spf13/cobra"
)

var commitMessage string

// actionFunc runs one workflow and returns a one-line summary for the dashboard
type actionFunc func(ctx context.Context, e *env) (string, error)

var dashboardActions = map[app.Action]actionFunc{
	app.ActionSync:        runSync,
	app.ActionSyncCommits: runSyncCommits,
	app.ActionCommit:      runCommit,
	app.ActionBranchPR:    runBranchPR,
	app.ActionScaffold:    runScaffold,
}

func withEnv(cmd *cobra.Command, fn actionFunc) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	e, err := setupEnv(ctx, cmd)
	if err != nil {
		return err
	}
	_, err = fn(ctx, e)
	return err
}

func simpleCmd(use, short string, fn actionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, fn)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return simpleCmd("status", "Show uncommitted changes, divergence, branches and recent log", runStatus)
}

func newSyncCmd() *cobra.Command {
	return simpleCmd("sync", "Checkout main, stash, pull --rebase and restore the stash", runSync)
}

func newSyncCommitsCmd() *cobra.Command {
	return simpleCmd("sync-commits", "Push local-only commits and pull remote-only commits", runSyncCommits)
}

func newCommitCmd() *cobra.Command {
	cmd := simpleCmd("commit", "Stage all changes and commit them", runCommit)
	cmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message (prompted if omitted)")
	return cmd
}

func newBranchPRCmd() *cobra.Command {
	return simpleCmd("branch-pr", "Create a feature branch, push it and open a pull request link", runBranchPR)
}

func newScaffoldCmd() *cobra.Command {
	return simpleCmd("scaffold", "Create the configured project folders with .gitkeep files", runScaffold)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	return withEnv(cmd, func(ctx context.Context, e *env) (string, error) {
		if !e.interactive {
			return "", errors.New("the dashboard needs an interactive terminal; run a subcommand such as `repodash status`")
		}

		notice := ""
		for {
			action, err := app.Run(ctx, app.Options{
				Source:     e.status,
				MainBranch: e.mainBranch,
				RepoPath:   e.root,
				DryRun:     dryRun,
				Notice:     notice,
			})
			if err != nil {
				return "", err
			}

			run, ok := dashboardActions[action]
			if !ok {
				return "", nil
			}

			notice, err = run(ctx, e)
			if err != nil {
				if ctx.Err() != nil {
					return "", err
				}
				if !errors.Is(err, errRunFailed) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
					notice = action.String() + " failed: " + err.Error()
				}
			}
			waitForEnter(cmd.InOrStdin(), e.out)
		}
	})
}

func waitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress enter to return to the dashboard...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}

func runStatus(ctx context.Context, e *env) (string, error) {
	st, err := e.status.Get(ctx)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(e.out, ui.RenderStatus(st, e.mainBranch))
	return "", nil
}

func runSync(ctx context.Context, e *env) (string, error) {
	report, err := e.orch.SyncRepo(ctx)
	fmt.Fprintln(e.out, ui.RenderReport("sync", report))
	if err != nil {
		return "", err
	}
	if !report.Succeeded() {
		return "Sync finished with failures", errRunFailed
	}
	return "Sync finished", nil
}

func runSyncCommits(ctx context.Context, e *env) (string, error) {
	st, err := e.status.Get(ctx)
	if err != nil {
		return "", err
	}

	report := e.orch.SyncCommits(ctx, st)
	fmt.Fprintln(e.out, ui.RenderReport("sync commits", report))
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !report.Succeeded() {
		return "Sync commits finished with failures", errRunFailed
	}
	return "Commits in sync", nil
}

func runCommit(ctx context.Context, e *env) (string, error) {
	report, err := e.orch.CommitChanges(ctx)
	if errors.Is(err, prompt.ErrCancelled) {
		return "Commit cancelled", nil
	}
	if err != nil {
		return "", err
	}

	fmt.Fprintln(e.out, ui.RenderReport("commit", report))
	if !report.Succeeded() {
		return "Commit failed", errRunFailed
	}
	return "Changes committed", nil
}

func runBranchPR(ctx context.Context, e *env) (string, error) {
	st, err := e.status.Get(ctx)
	if err != nil {
		return "", err
	}

	pr, err := e.orch.CreateBranchAndPR(ctx, st)
	if errors.Is(err, orchestrator.ErrUnsafeBranch) {
		return "", fmt.Errorf("%w: commit and sync your work first", err)
	}
	if err != nil {
		return "", err
	}

	fmt.Fprintln(e.out, ui.RenderBranchPR(pr))
	return "Pushed " + pr.Branch, nil
}

func runScaffold(ctx context.Context, e *env) (string, error) {
	if dryRun {
		for _, folder := range e.orch.Config().Folders {
			fmt.Fprintf(e.out, "[dry-run] create %s\n", filepath.Join(folder, orchestrator.KeepFile))
		}
		return "Scaffold planned", nil
	}

	created, err := e.orch.Scaffold(ctx)
	fmt.Fprintln(e.out, ui.RenderScaffold(created))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created %d folder(s)", len(created)), nil
}
