package archstudio

import (
	"log/slog"

	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/session"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures the Studio.
type Option func(*studioConfig)

// studioConfig holds configuration for a Studio instance.
type studioConfig struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	sessions session.Store
	briefs   []catalog.DesignScenario
}

// WithLogger sets a custom logger for the studio.
// If not provided, a default JSON logger writing to stdout is created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *studioConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. When set, every evaluation and
// simulation produces a span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *studioConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter. When set, the studio records
// coverage scores, finding counts, and protection percentages as metrics.
func WithMeter(meter metric.Meter) Option {
	return func(c *studioConfig) {
		c.meter = meter
	}
}

// WithSessionStore sets the session store used to park designs between
// interactions. Defaults to an in-memory store.
func WithSessionStore(store session.Store) Option {
	return func(c *studioConfig) {
		c.sessions = store
	}
}

// WithBriefs sets the engagement briefs available to the exporter.
// Defaults to the builtin briefs.
func WithBriefs(briefs ...catalog.DesignScenario) Option {
	return func(c *studioConfig) {
		c.briefs = briefs
	}
}
