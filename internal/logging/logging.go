// Package logging builds the application logger.
//
// The terminal belongs to the TUI, so records always go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultPath returns $XDG_STATE_HOME/encore/encore.log, creating the
// directory if needed.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("encore", "encore.log"))
}

// ParseLevel maps a config level name to a slog level. Unknown or empty
// names yield info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Open opens (appending) the log file at path, or the default path when
// empty, and returns a logger over it. Callers close the returned file.
func Open(path, level string) (*slog.Logger, *os.File, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, ParseLevel(level)), f, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
