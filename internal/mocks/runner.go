// Package mocks provides a scripted fake for the command runner.
package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/wahlandcase/attuned.repodash/internal/models"
	"github.com/wahlandcase/attuned.repodash/internal/runner"
)

// Response is a canned reply for a command
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner replies to commands from a table keyed by command-line prefix.
// Commands with no matching entry succeed with empty output.
// It is safe for concurrent use.
type Runner struct {
	mu        sync.Mutex
	responses []prefixResponse
	Calls     []string
}

type prefixResponse struct {
	prefix string
	resp   Response
}

// NewRunner creates an empty scripted runner
func NewRunner() *Runner {
	return &Runner{}
}

// On registers resp for any command line starting with prefix.
// Later registrations take precedence over earlier ones.
func (r *Runner) On(prefix string, resp Response) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses = append([]prefixResponse{{prefix: prefix, resp: resp}}, r.responses...)
	return r
}

// OnOutput registers a successful reply with stdout
func (r *Runner) OnOutput(prefix, stdout string) *Runner {
	return r.On(prefix, Response{Stdout: stdout})
}

// OnFail registers a failing reply
func (r *Runner) OnFail(prefix string, exitCode int, stderr string) *Runner {
	return r.On(prefix, Response{ExitCode: exitCode, Stderr: stderr})
}

func (r *Runner) Run(_ context.Context, name string, args ...string) models.Result {
	argv := append([]string{name}, args...)
	line := models.CommandResult{Args: argv}.CommandLine()

	r.mu.Lock()
	r.Calls = append(r.Calls, line)
	resp := Response{}
	for _, pr := range r.responses {
		if strings.HasPrefix(line, pr.prefix) {
			resp = pr.resp
			break
		}
	}
	r.mu.Unlock()

	if resp.ExitCode != 0 {
		return models.Failed(argv, resp.ExitCode, resp.Stdout, resp.Stderr)
	}
	return models.Ok(models.CommandResult{Args: argv, Stdout: resp.Stdout, Stderr: resp.Stderr})
}

// Count returns how many recorded calls start with prefix
func (r *Runner) Count(prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Called returns true if any recorded call starts with prefix
func (r *Runner) Called(prefix string) bool {
	return r.Count(prefix) > 0
}

// Compile-time check that Runner implements runner.Runner.
var _ runner.Runner = (*Runner)(nil)
