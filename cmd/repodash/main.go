package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	repoFlag string
	yes      bool
	debug    bool
	noColor  bool
	dryRun   bool
	timeout  time.Duration
)

// errRunFailed is returned when a workflow finished with a failed or aborted phase;
// the report has already been printed
var errRunFailed = errors.New("run finished with failures")

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "repodash",
		Short:         "Dashboard for keeping a git working copy in step with its remote",
		Long:          "repodash shows repository status and runs sync workflows: stash/rebase/unstash against the main line, push/pull of diverged commits, commits, and feature branches with pull request links.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDashboard,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&repoFlag, "repo", "C", "", "Path inside the working copy (default: config repo.path or current directory)")
	flags.BoolVarP(&yes, "yes", "y", false, "Answer yes to every confirmation")
	flags.BoolVar(&debug, "debug", false, "Write debug logs to stderr")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&dryRun, "dry-run", false, "Print mutating commands instead of running them")
	flags.DurationVar(&timeout, "timeout", 0, "Deadline for the whole invocation (0 = none)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newSyncCmd(),
		newSyncCommitsCmd(),
		newCommitCmd(),
		newBranchPRCmd(),
		newScaffoldCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
