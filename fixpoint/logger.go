package fixpoint

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with solver-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithProblem adds the problem name to the logger.
func (l *Logger) WithProblem(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("problem", name),
	}
}

// WithStrategy adds the iteration strategy to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogSweep logs one completed sweep.
func (l *Logger) LogSweep(ctx context.Context, sweep, changes int) {
	l.DebugContext(ctx, "sweep completed",
		"sweep", sweep,
		"changes", changes,
	)
}

// LogSolve logs the outcome of a solve.
func (l *Logger) LogSolve(ctx context.Context, stats Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"sweeps", stats.Sweeps,
			"unions", stats.Unions,
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "solve converged",
		"sweeps", stats.Sweeps,
		"unions", stats.Unions,
		"changes", stats.Changes,
		"duration", stats.Duration,
	)
}
