// Package logging wires log/slog to a tint handler. The TUI owns the
// terminal, so logs go to a file; with no path configured everything
// is discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger. The returned func closes the
// log file and is safe to call even when logging is disabled.
func Setup(path, level string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(tint.NewHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(f, &tint.Options{
			Level:      parseLevel(level),
			TimeFormat: time.TimeOnly,
			NoColor:    true,
		}),
	))
	return func() { _ = f.Close() }, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
