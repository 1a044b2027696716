package uritemplate

import (
	"log/slog"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
)

// compileConfig holds the observability hooks bound to a Template.
type compileConfig struct {
	logger  *slog.Logger
	spans   observability.SpanManager
	metrics observability.MetricsRecorder
}

// defaultCompileConfig returns the default configuration: no logging,
// no tracing, no-op metrics.
func defaultCompileConfig() compileConfig {
	return compileConfig{
		metrics: observability.NoopMetrics{},
	}
}

// Option configures a Template at compile time.
type Option func(*compileConfig)

// WithLogger sets the structured logger for compile and expand events.
// Default: no logging.
//
// Example:
//
//	tmpl, err := uritemplate.Compile(text, matchers,
//	    uritemplate.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *compileConfig) {
		c.logger = logger
	}
}

// WithTracing sets the span manager used to trace expansions.
// Default: tracing disabled.
//
// Example:
//
//	tmpl, err := uritemplate.Compile(text, matchers,
//	    uritemplate.WithTracing(observability.NewSpanManager()))
func WithTracing(spans observability.SpanManager) Option {
	return func(c *compileConfig) {
		c.spans = spans
	}
}

// WithMetrics sets the metrics recorder for compile and expand outcomes.
// Default: no-op recorder.
//
// Example:
//
//	tmpl, err := uritemplate.Compile(text, matchers,
//	    uritemplate.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(metrics observability.MetricsRecorder) Option {
	return func(c *compileConfig) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}
