package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// newLogger builds the stderr logger from a validated LogConfig.
// Format "auto" picks text for a terminal and JSON for anything else.
func newLogger(w io.Writer, lc LogConfig) *slog.Logger {
	var level slog.Level
	// level names were checked by validateConfig
	_ = level.UnmarshalText([]byte(strings.ToUpper(lc.Level)))

	opts := &slog.HandlerOptions{Level: level}
	if resolveLogFormat(w, lc.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// resolveLogFormat maps "auto" to "text" or "json" depending on whether w
// is a terminal.
func resolveLogFormat(w io.Writer, format string) string {
	if format != "auto" {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "text"
	}

	return "json"
}
