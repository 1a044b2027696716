package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records uritemplate metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCompile records a compilation with its outcome, duration,
	// and the number of compiled parts.
	RecordCompile(ctx context.Context, success bool, duration time.Duration, partCount int)

	// RecordExpand records an expansion with its outcome, duration, and
	// output size in bytes.
	RecordExpand(ctx context.Context, success bool, duration time.Duration, outputBytes int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	compiles       metric.Int64Counter
	compileLatency metric.Float64Histogram
	compileErrors  metric.Int64Counter
	expands        metric.Int64Counter
	expandLatency  metric.Float64Histogram
	expandErrors   metric.Int64Counter
	outputSize     metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("uritemplate")

	compiles, err := meter.Int64Counter("uritemplate.compile.count",
		metric.WithDescription("Number of template compilations"),
	)
	if err != nil {
		return nil, err
	}

	compileLatency, err := meter.Float64Histogram("uritemplate.compile.latency_ms",
		metric.WithDescription("Template compilation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	compileErrors, err := meter.Int64Counter("uritemplate.compile.errors",
		metric.WithDescription("Number of template compilation failures"),
	)
	if err != nil {
		return nil, err
	}

	expands, err := meter.Int64Counter("uritemplate.expand.count",
		metric.WithDescription("Number of template expansions"),
	)
	if err != nil {
		return nil, err
	}

	expandLatency, err := meter.Float64Histogram("uritemplate.expand.latency_ms",
		metric.WithDescription("Template expansion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	expandErrors, err := meter.Int64Counter("uritemplate.expand.errors",
		metric.WithDescription("Number of template expansion failures"),
	)
	if err != nil {
		return nil, err
	}

	outputSize, err := meter.Int64Histogram("uritemplate.expand.output_bytes",
		metric.WithDescription("Expanded URI size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		compiles:       compiles,
		compileLatency: compileLatency,
		compileErrors:  compileErrors,
		expands:        expands,
		expandLatency:  expandLatency,
		expandErrors:   expandErrors,
		outputSize:     outputSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCompile records a compilation.
func (m *otelMetrics) RecordCompile(ctx context.Context, success bool, duration time.Duration, partCount int) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.compiles.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.compileLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if !success {
		m.compileErrors.Add(ctx, 1)
	}
}

// RecordExpand records an expansion.
func (m *otelMetrics) RecordExpand(ctx context.Context, success bool, duration time.Duration, outputBytes int) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.expands.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.expandLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if success {
		m.outputSize.Record(ctx, int64(outputBytes))
	} else {
		m.expandErrors.Add(ctx, 1)
	}
}
