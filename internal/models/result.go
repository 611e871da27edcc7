package models

import (
	"fmt"
	"strings"
)

// Result is the tagged outcome of running a command: either Ok or Failed
type Result interface {
	isResult()
	// Command returns the captured command data for either variant
	Command() CommandResult
}

type resultOk struct{ cmd CommandResult }
type resultFailed struct{ cmd CommandResult }

func (resultOk) isResult()     {}
func (resultFailed) isResult() {}

func (r resultOk) Command() CommandResult     { return r.cmd }
func (r resultFailed) Command() CommandResult { return r.cmd }

// Ok wraps a successful command
func Ok(cmd CommandResult) Result {
	return resultOk{cmd: cmd}
}

// Failed creates a Result for a command that exited non-zero or never started
func Failed(args []string, exitCode int, stdout, stderr string) Result {
	return resultFailed{cmd: CommandResult{
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}}
}

// IsOk returns true if r is the Ok variant
func IsOk(r Result) bool {
	_, ok := r.(resultOk)
	return ok
}

// IsFailed returns true if r is the Failed variant
func IsFailed(r Result) bool {
	_, ok := r.(resultFailed)
	return ok
}

// Output returns trimmed stdout for either variant
func Output(r Result) string {
	return strings.TrimSpace(r.Command().Stdout)
}

// CommandError is returned by Err for failed commands
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "no output"
	}
	return fmt.Sprintf("%s (exit %d): %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

// Err returns nil for Ok results and a *CommandError for Failed ones
func Err(r Result) error {
	failed, ok := r.(resultFailed)
	if !ok {
		return nil
	}
	return &CommandError{
		Args:     failed.cmd.Args,
		ExitCode: failed.cmd.ExitCode,
		Stderr:   failed.cmd.Stderr,
	}
}
