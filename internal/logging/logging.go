// Package logging builds the slog loggers used by the command-line tools.
package logging

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// New returns a logger writing to w. Human-readable output goes through the
// charm handler; jsonOut switches to slog's JSON handler for piping into
// other tools.
func New(w io.Writer, jsonOut, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if jsonOut {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           charmlog.InfoLevel,
	})
	if debug {
		handler.SetLevel(charmlog.DebugLevel)
	}
	return slog.New(handler)
}

// Setup installs the logger as the slog default and returns it.
func Setup(w io.Writer, jsonOut, debug bool) *slog.Logger {
	logger := New(w, jsonOut, debug)
	slog.SetDefault(logger)
	return logger
}
