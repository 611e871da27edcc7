// Package runner executes external commands and captures their output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.repodash/internal/logging"
	"github.com/wahlandcase/attuned.repodash/internal/models"
)

// Runner runs one external command to completion
type Runner interface {
	Run(ctx context.Context, name string, args ...string) models.Result
}

// stableLocale keeps git messages untranslated so output markers such as
// "No local changes to save" can be matched
const stableLocale = "LC_ALL=C"

// ExecRunner runs commands with os/exec in a fixed working directory
type ExecRunner struct {
	// Dir is the working directory; empty means the current one
	Dir string
	// Passthrough, if set, also receives stdout and stderr as they are produced
	Passthrough io.Writer
}

// New creates an ExecRunner for dir
func New(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes name with args. Output is always captured. A non-zero exit,
// or a process that could not be started, yields a Failed result.
func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) models.Result {
	argv := append([]string{name}, args...)

	cmd := exec.CommandContext(ctx, name, args...)
	if strings.TrimSpace(e.Dir) != "" {
		cmd.Dir = e.Dir
	}
	cmd.Env = append(os.Environ(), stableLocale)

	var stdout, stderr bytes.Buffer
	if e.Passthrough != nil {
		cmd.Stdout = io.MultiWriter(&stdout, e.Passthrough)
		cmd.Stderr = io.MultiWriter(&stderr, e.Passthrough)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		logging.Logger.Debug("Command succeeded", "args", argv, "duration", elapsed)
		return models.Ok(models.CommandResult{
			Args:     argv,
			ExitCode: 0,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		})
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	errText := stderr.String()
	if exitCode == -1 && strings.TrimSpace(errText) == "" {
		errText = err.Error()
	}

	logging.Logger.Debug("Command failed",
		"args", argv,
		"exit_code", exitCode,
		"stderr", strings.TrimSpace(errText),
		"duration", elapsed)

	return models.Failed(argv, exitCode, stdout.String(), errText)
}

// Compile-time check that ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)
