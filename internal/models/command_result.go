package models

import "strings"

// CommandResult is the captured outcome of one external command
type CommandResult struct {
	// Args is the full argv, program name first
	Args []string
	// ExitCode of the process (-1 if it never started)
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded returns true if the command exited with status 0
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// CommandLine returns the argv joined with spaces, for display only
func (r CommandResult) CommandLine() string {
	return strings.Join(r.Args, " ")
}
