package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Init builds a logger writing to w and installs it as the slog default.
// When reportsOnStdout is true the logger emits JSON so diagnostics stay
// machine-readable next to JSON reports. Otherwise it uses the text handler.
func Init(w io.Writer, reportsOnStdout bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if reportsOnStdout {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("app", "skylog")
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
