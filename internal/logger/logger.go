package logger

import (
	"log/slog"
	"os"
	"strings"
)

// L is the shared structured logger. Init replaces it; the zero value logs
// at info to stderr so packages can log before Init runs.
var L = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init configures the shared logger with the given level ("debug", "info",
// "warn", "error").
func Init(levelStr string) {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(L)
}
