package diag

import (
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"dae-track-converter/internal/anim"
)

var loggerPtr atomic.Pointer[slog.Logger]

// Silent until SetLogger; shares the conversion core's default.
func init() {
	loggerPtr.Store(anim.Logger())
}

// ParseLevel maps debug|info|warn|error to a slog level. Unknown strings are info.
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

// NewLogger builds a text logger writing to w at the given level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// SetLogger installs l for the tools and propagates it to the conversion core.
// Nil silences both.
func SetLogger(l *slog.Logger) {
	anim.SetLogger(l)
	loggerPtr.Store(anim.Logger())
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
