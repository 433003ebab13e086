package assoc

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the few structured events an Array emits.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// LogRehash logs a completed rebuild of both tables.
func (l *Logger) LogRehash(oldPrimary, oldSecondary, newPrimary, newSecondary, entries, attempts int) {
	l.Debug("rehash completed",
		"old_primary", oldPrimary,
		"old_secondary", oldSecondary,
		"new_primary", newPrimary,
		"new_secondary", newSecondary,
		"entries", entries,
		"attempts", attempts,
	)
}

// LogReseed logs a rebuild attempt that gave up on growth and switched to a
// freshly seeded hash pair.
func (l *Logger) LogReseed(primary, secondary, attempt int) {
	l.Warn("rehash reseeding hashes",
		"primary", primary,
		"secondary", secondary,
		"attempt", attempt,
	)
}

// LogFatal logs an unrecoverable configuration error.
func (l *Logger) LogFatal(err error) {
	l.Error("fatal configuration error", "error", err)
}
