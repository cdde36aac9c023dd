// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// SetLogger replaces the logger used by the observability helpers.
func SetLogger(l *slog.Logger) {
	if l != nil {
		GlobalLogger = &Logger{Logger: l}
	}
}

// LogUnitOfWork logs the outcome of a unit of work at debug level.
func LogUnitOfWork(ctx context.Context, operation string, err error) {
	if err != nil {
		GlobalLogger.DebugContext(ctx, "unit of work rolled back",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return
	}
	GlobalLogger.DebugContext(ctx, "unit of work committed",
		slog.String("operation", operation),
	)
}
