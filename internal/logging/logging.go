// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger is the logger used by all packages. It discards until Initialize is called.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// RunID identifies this invocation in log records and stash messages
var RunID = uuid.New().String()

// Initialize configures Logger. With debug off everything is discarded;
// with debug on, text records go to w (stderr if nil).
func Initialize(debug bool, w io.Writer) {
	if os.Getenv("REPODASH_DEBUG") == "1" {
		debug = true
	}

	if !debug {
		Logger = slog.New(slog.NewTextHandler(io.Discard, nil)).With("run_id", RunID)
		return
	}

	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	Logger = slog.New(handler).With("run_id", RunID)
	Logger.Debug("Debug logging initialized")
}

// ShortRunID returns the first segment of RunID
func ShortRunID() string {
	if len(RunID) >= 8 {
		return RunID[:8]
	}
	return RunID
}
