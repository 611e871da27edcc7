package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/wahlandcase/attuned.repodash/internal/app"
	"github.com/wahlandcase/attuned.repodash/internal/config"
	"github.com/wahlandcase/attuned.repodash/internal/git"
	"github.com/wahlandcase/attuned.repodash/internal/github"
	"github.com/wahlandcase/attuned.repodash/internal/logging"
	"github.com/wahlandcase/attuned.repodash/internal/orchestrator"
	"github.com/wahlandcase/attuned.repodash/internal/prompt"
	"github.com/wahlandcase/attuned.repodash/internal/runner"
	"github.com/wahlandcase/attuned.repodash/internal/status"
	"github.com/wahlandcase/attuned.repodash/internal/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// env is everything one invocation needs, resolved from flags and config
type env struct {
	root        string
	mainBranch  string
	interactive bool

	out    io.Writer
	status *status.Aggregator
	orch   *orchestrator.Orchestrator
}

// signalContext returns a context cancelled on SIGINT/SIGTERM and after --timeout
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// messagePrompter answers Input with a message given on the command line
type messagePrompter struct {
	prompt.Prompter
	message string
}

func (m messagePrompter) Input(string) (string, error) {
	return m.message, nil
}

// setupEnv resolves config, the working copy and the collaborators
func setupEnv(ctx context.Context, cmd *cobra.Command) (*env, error) {
	logging.Initialize(debug, cmd.ErrOrStderr())
	if noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColor()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	start := repoFlag
	if start == "" {
		start = cfg.RepoPath()
	}
	if start == "" {
		start = "."
	}
	root, err := git.FindRoot(start)
	if err != nil {
		return nil, fmt.Errorf("not inside a git repository: %s", start)
	}

	remote := cfg.Repo.Remote
	mainBranch := cfg.Repo.MainBranch
	if cfg.AutoDetectBranch() {
		mainBranch = git.DetectMainBranch(root, remote)
	}

	repoURL := cfg.Repo.RepositoryURL
	if repoURL == "" {
		if u, err := git.RemoteURL(root, remote); err == nil {
			repoURL = u
		} else {
			logging.Logger.Debug("No remote URL", "remote", remote, "error", err)
		}
	}

	var r runner.Runner = runner.New(root)
	if dryRun {
		r = &runner.DryRun{Inner: r, Out: cmd.OutOrStdout()}
	}

	interactive := isInteractive()
	var p prompt.Prompter
	switch {
	case yes:
		p = prompt.AutoConfirm{Answer: true}
	case interactive:
		p = prompt.NewHuh(os.Stdin, os.Stdout)
	default:
		p = prompt.Refuse{}
	}
	if commitMessage != "" {
		p = messagePrompter{Prompter: p, message: commitMessage}
	}

	opener := app.OpenURL
	if dryRun {
		opener = func(url string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "[dry-run] open %s\n", url)
			return nil
		}
	}

	gitClient := git.NewClient(r, remote, mainBranch)
	gh := github.NewClient(r)

	useGH := cfg.PR.UseGH
	if useGH && !dryRun {
		if err := gh.CheckAuth(ctx); err != nil {
			logging.Logger.Warn("gh unavailable, using compare links", "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
			useGH = false
		}
	}

	orch := orchestrator.New(orchestrator.Config{
		MainBranch:    mainBranch,
		Remote:        remote,
		RepositoryURL: repoURL,
		UseGH:         useGH,
		BranchPrefix:  cfg.PR.BranchPrefix,
		Folders:       cfg.Scaffold.Folders,
		Root:          root,
	}, orchestrator.Dependencies{
		Git:      gitClient,
		GitHub:   gh,
		Prompter: p,
		Logger:   logging.Logger,
		OpenURL:  opener,
		RunID:    logging.ShortRunID(),
	})

	logging.Logger.Debug("Environment ready",
		"root", root,
		"main", mainBranch,
		"remote", remote,
		"dryRun", dryRun,
		"interactive", interactive)

	return &env{
		root:        root,
		mainBranch:  mainBranch,
		interactive: interactive,
		out:         cmd.OutOrStdout(),
		status:      status.New(gitClient),
		orch:        orch,
	}, nil
}
