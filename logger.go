package kora

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific context.
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

// WithK adds a cluster count field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithSamples adds a sample count field to the logger.
func (l *Logger) WithSamples(samples int) *Logger {
	return &Logger{
		Logger: l.Logger.With("samples", samples),
	}
}

// WithMethod adds an outlier method field to the logger.
func (l *Logger) WithMethod(method string) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", method),
	}
}

// LogFit logs a fit operation.
func (l *Logger) LogFit(ctx context.Context, k, iterations int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"k", k,
			"iterations", iterations,
			"converged", converged,
		)
	}
}

// LogPredict logs a predict operation.
func (l *Logger) LogPredict(ctx context.Context, samples int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "predict failed",
			"samples", samples,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "predict completed",
			"samples", samples,
		)
	}
}

// LogEvaluate logs an evaluation pass.
func (l *Logger) LogEvaluate(ctx context.Context, fields int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluate failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "evaluate completed",
			"fields", fields,
		)
	}
}

// LogSweep logs a cluster-count sweep.
func (l *Logger) LogSweep(ctx context.Context, candidates int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"candidates", candidates,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"candidates", candidates,
		)
	}
}

// LogOutliers logs an outlier detection pass.
func (l *Logger) LogOutliers(ctx context.Context, flagged int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "outlier detection failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "outlier detection completed",
			"flagged", flagged,
		)
	}
}
