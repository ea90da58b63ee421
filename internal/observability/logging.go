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

// RepoLogger provides structured logging for repository operations.
type RepoLogger struct {
	tableName string
	logger    *Logger
}

// NewRepoLogger creates a new RepoLogger for the given table.
func NewRepoLogger(tableName string) *RepoLogger {
	return &RepoLogger{
		tableName: tableName,
		logger:    GlobalLogger,
	}
}

// LogError logs a repository error.
func (l *RepoLogger) LogError(ctx context.Context, err error, operation string) {
	l.logger.ErrorContext(ctx, "repository error",
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// LogAnomaly logs a counter recomputation failure. The surrounding mutation
// has already been applied, so the cached counter may be stale until the next
// successful recount.
func (l *RepoLogger) LogAnomaly(ctx context.Context, err error, counter string, journalID uint) {
	CounterRecountAnomalies.WithLabelValues(counter).Inc()
	l.logger.ErrorContext(ctx, "counter recount failed",
		slog.String("table", l.tableName),
		slog.String("counter", counter),
		slog.Uint64("journal_id", uint64(journalID)),
		slog.String("error", err.Error()),
	)
}
