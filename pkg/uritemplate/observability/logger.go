// Package observability provides production-grade observability features
// for uritemplate: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NewExpandID returns a unique identifier for one expansion, used to
// correlate its log records and trace span.
func NewExpandID() string {
	return uuid.New().String()
}

// EnrichLogger adds template context to a logger.
// Returns a new logger with template and expand_id fields.
func EnrichLogger(logger *slog.Logger, template, expandID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("template", template),
		slog.String("expand_id", expandID),
	)
}

// LogCompile logs a successful compilation.
func LogCompile(logger *slog.Logger, template string, partCount int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("template compiled",
		slog.String("template", template),
		slog.Int("parts", partCount),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCompileError logs a compilation failure.
func LogCompileError(logger *slog.Logger, template string, err error) {
	if logger == nil {
		return
	}
	logger.Error("template compilation failed",
		slog.String("template", template),
		slog.String("error", err.Error()),
	)
}

// LogExpandStart logs the start of an expansion.
func LogExpandStart(logger *slog.Logger, expandID string) {
	if logger == nil {
		return
	}
	logger.Debug("expansion starting",
		slog.String("expand_id", expandID),
	)
}

// LogExpandComplete logs a successful expansion.
func LogExpandComplete(logger *slog.Logger, expandID string, durationMs float64, outputBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("expansion completed",
		slog.String("expand_id", expandID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("output_bytes", outputBytes),
	)
}

// LogExpandError logs an expansion failure.
func LogExpandError(logger *slog.Logger, expandID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("expansion failed",
		slog.String("expand_id", expandID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
