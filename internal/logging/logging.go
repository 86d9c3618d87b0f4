// Package logging constructs the diagnostic slog.Logger used on stderr.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Options configures logger construction. The zero value yields an
// error-level text logger, which is the shipped configuration: the CLI
// contract reserves stdout for its single result or diagnostic line, and at
// error level nothing the program does ever reaches stderr.
type Options struct {
	// Level is one of "debug", "info", "warn", "error". Defaults to error.
	Level string

	// Format is "text" or "json". Defaults to text.
	Format string

	// NoColor disables ANSI styling on the text handler.
	NoColor bool
}

// New creates and configures a new slog.Logger instance writing to w. It does
// not set the global logger, allowing for isolated logger instances.
func New(w io.Writer, opts Options) *slog.Logger {
	var level slog.Level
	switch opts.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelError
	}

	var handler slog.Handler
	if opts.Format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    opts.NoColor,
		})
	}

	return slog.New(handler)
}
