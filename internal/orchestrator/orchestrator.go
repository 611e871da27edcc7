// Package orchestrator runs the repository synchronization workflows:
// stash/rebase/unstash sync, divergence resolution, commit, feature
// branch with pull request, and folder scaffolding.
package orchestrator

import (
	"errors"
	"log/slog"
	"time"

	"github.com/wahlandcase/attuned.repodash/internal/git"
	"github.com/wahlandcase/attuned.repodash/internal/github"
	"github.com/wahlandcase/attuned.repodash/internal/logging"
	"github.com/wahlandcase/attuned.repodash/internal/prompt"
)

var (
	// ErrCheckoutFailed means the main line could not be checked out; nothing else was attempted
	ErrCheckoutFailed = errors.New("checkout of main branch failed")
	// ErrUnsafeBranch means the working copy has uncommitted changes or unpushed commits
	ErrUnsafeBranch = errors.New("working copy has uncommitted changes or unpushed commits")
	// ErrEmptyMessage means the operator gave no commit message
	ErrEmptyMessage = errors.New("commit message is empty")
)

// DefaultBranchPrefix is prepended to the timestamp of automatic feature branches
const DefaultBranchPrefix = "feature/auto-"

// branchTimeLayout formats the branch suffix as YYYYMMDD-HHMMSS
const branchTimeLayout = "20060102-150405"

// DefaultFolders are the project folders created by Scaffold
var DefaultFolders = []string{"app", "infra", "tests", "docs", ".github/workflows"}

// Config is the per-invocation orchestrator configuration
type Config struct {
	MainBranch    string
	Remote        string
	RepositoryURL string
	UseGH         bool
	BranchPrefix  string
	Folders       []string
	// Root is the working copy root; Scaffold creates folders under it
	Root string
}

// Dependencies are the collaborators of an Orchestrator.
// Nil fields get defaults from New.
type Dependencies struct {
	Git      *git.Client
	GitHub   *github.Client
	Prompter prompt.Prompter
	Logger   *slog.Logger
	Now      func() time.Time
	OpenURL  func(string) error
	RunID    string
}

// Orchestrator sequences git commands for the sync workflows.
// Mutating commands are always issued one at a time.
type Orchestrator struct {
	cfg    Config
	git    *git.Client
	gh     *github.Client
	prompt prompt.Prompter
	log    *slog.Logger
	now    func() time.Time
	open   func(string) error
	runID  string
}

// New creates an Orchestrator
func New(cfg Config, deps Dependencies) *Orchestrator {
	if cfg.MainBranch == "" {
		cfg.MainBranch = deps.Git.MainBranch()
	}
	if cfg.Remote == "" {
		cfg.Remote = deps.Git.Remote()
	}
	if cfg.BranchPrefix == "" {
		cfg.BranchPrefix = DefaultBranchPrefix
	}
	if cfg.Folders == nil {
		cfg.Folders = DefaultFolders
	}

	o := &Orchestrator{
		cfg:    cfg,
		git:    deps.Git,
		gh:     deps.GitHub,
		prompt: deps.Prompter,
		log:    deps.Logger,
		now:    deps.Now,
		open:   deps.OpenURL,
		runID:  deps.RunID,
	}
	if o.prompt == nil {
		o.prompt = prompt.AutoConfirm{}
	}
	if o.log == nil {
		o.log = logging.Logger
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.open == nil {
		o.open = func(string) error { return nil }
	}
	if o.runID == "" {
		o.runID = logging.ShortRunID()
	}
	return o
}

// Config returns the effective configuration
func (o *Orchestrator) Config() Config {
	return o.cfg
}
