package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wahlandcase/attuned.repodash/internal/models"
)

// DryRun passes read-only git queries through to Inner and prints every
// other command to Out instead of running it.
type DryRun struct {
	Inner Runner
	Out   io.Writer
}

// readOnlyGit lists the git subcommands that never modify the repository
var readOnlyGit = map[string]bool{
	"status":    true,
	"log":       true,
	"branch":    true,
	"rev-list":  true,
	"rev-parse": true,
}

func (d *DryRun) Run(ctx context.Context, name string, args ...string) models.Result {
	if name == "git" && isReadOnlyGit(args) {
		return d.Inner.Run(ctx, name, args...)
	}

	cmd := models.CommandResult{Args: append([]string{name}, args...)}
	fmt.Fprintf(d.Out, "[dry-run] %s\n", cmd.CommandLine())
	return models.Ok(cmd)
}

func isReadOnlyGit(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] == "remote" {
		return isRemoteListing(args)
	}
	return readOnlyGit[args[0]] && !isBranchMutation(args)
}

// isRemoteListing reports whether a `git remote` call only lists or reads URLs
func isRemoteListing(args []string) bool {
	switch len(args) {
	case 1:
		return true
	case 2:
		return args[1] == "-v" || args[1] == "--verbose"
	}
	return args[1] == "get-url"
}

// isBranchMutation reports whether a `git branch` call creates, deletes or renames
func isBranchMutation(args []string) bool {
	if args[0] != "branch" {
		return false
	}
	for _, a := range args[1:] {
		switch a {
		case "-d", "-D", "-m", "-M", "-c", "-C", "--delete", "--move", "--copy":
			return true
		}
		if !strings.HasPrefix(a, "-") {
			return true
		}
	}
	return false
}

var _ Runner = (*DryRun)(nil)
