// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with simulation field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
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

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes key=value text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRun tags every entry with the experiment key.
func (l *Logger) WithRun(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run", key),
	}
}

// WithWorker tags every entry with a worker index.
func (l *Logger) WithWorker(i int) *Logger {
	return &Logger{
		Logger: l.Logger.With("worker", i),
	}
}

// LogProgress logs how many trials are done.
func (l *Logger) LogProgress(ctx context.Context, done, total int, failures int64) {
	l.InfoContext(ctx, "trials in progress",
		"done", done,
		"total", total,
		"failures", failures,
	)
}

// LogRun logs the end of a run.
func (l *Logger) LogRun(ctx context.Context, s Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run finished with errors",
			"trials", s.Trials,
			"failures", s.Failures,
			"errors", s.Errors,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "run completed",
		"trials", s.Trials,
		"failures", s.Failures,
		"error_rate", s.ErrorRate(),
		"cycles", s.Cycles,
		"sweep_limits", s.SweepLimits,
		"wall_time", s.WallTime,
	)
}

// LogTask logs one partitioned task.
func (l *Logger) LogTask(ctx context.Context, t Task) {
	l.DebugContext(ctx, "task assigned",
		"task", t.Index,
		"input", t.Input,
		"trials", t.Trials,
		"dir", t.Label,
	)
}
