package capclust

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with capclust-specific context.
// This provides structured logging with consistent field names.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithPoints adds a point-count field to the logger.
func (l *Logger) WithPoints(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", n),
	}
}

// LogFit logs the outcome of a fit operation.
func (l *Logger) LogFit(ctx context.Context, points, levelsRun int, satisfied bool, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"points", points,
			"levels_run", levelsRun,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "fit completed",
			"points", points,
			"levels_run", levelsRun,
			"capacity_satisfied", satisfied,
			"duration", duration,
		)
	}
}

// LogLevel logs the outcome of a single temperature level.
func (l *Logger) LogLevel(ctx context.Context, level int, temperature float64, iterations, realized int) {
	l.DebugContext(ctx, "temperature level completed",
		"level", level,
		"temperature", temperature,
		"iterations", iterations,
		"realized_clusters", realized,
	)
}

// LogPredict logs a predict operation.
func (l *Logger) LogPredict(ctx context.Context, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "predict failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "predict completed",
			"points", points,
		)
	}
}

// LogRebalance logs a rebalancing pass.
func (l *Logger) LogRebalance(ctx context.Context, moves, rounds int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rebalance failed",
			"moves", moves,
			"rounds", rounds,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "rebalance completed",
			"moves", moves,
			"rounds", rounds,
		)
	}
}
