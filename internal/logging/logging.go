// Package logging binds a slog logger to the --log-file flag. The TUI owns
// the terminal, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Level maps the -v/-vv verbosity count onto a slog level.
func Level(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Setup opens path for appending, writes a start banner and returns a text
// logger at the level for verbosity. An empty path yields a discarding
// logger.
func Setup(path, version string, verbosity int) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	_, _ = fmt.Fprintf(f, "=== modebar %s started at %s ===\n", version, time.Now().Format(time.RFC3339))
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: Level(verbosity)})
	return slog.New(h), f, nil
}
