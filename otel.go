package archstudio

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// otelMetrics holds the OpenTelemetry metric instruments for the studio.
// These are created once during New and reused for every evaluation.
type otelMetrics struct {
	// scoreHistogram records coverage scores (0 to 100)
	scoreHistogram metric.Int64Histogram

	// findingCounter counts gap findings by severity
	findingCounter metric.Int64Counter

	// protectionHistogram records attack simulation protection percentages
	protectionHistogram metric.Int64Histogram

	// evalCounter increments for each evaluation performed
	evalCounter metric.Int64Counter
}

// initOTelMetrics creates all metric instruments.
// Returns nil metrics when no meter is configured.
func initOTelMetrics(meter metric.Meter) (*otelMetrics, error) {
	if meter == nil {
		return nil, nil
	}

	m := &otelMetrics{}
	var err error

	m.scoreHistogram, err = meter.Int64Histogram(
		"archstudio.coverage_score",
		metric.WithDescription("Coverage score from 0 (empty design) to 100 (saturated)"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create score histogram: %w", err)
	}

	m.findingCounter, err = meter.Int64Counter(
		"archstudio.findings",
		metric.WithDescription("Gap findings produced, by severity"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create finding counter: %w", err)
	}

	m.protectionHistogram, err = meter.Int64Histogram(
		"archstudio.protection_pct",
		metric.WithDescription("Attack simulation protection percentage"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create protection histogram: %w", err)
	}

	m.evalCounter, err = meter.Int64Counter(
		"archstudio.evaluations",
		metric.WithDescription("Number of design evaluations performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create evaluation counter: %w", err)
	}

	return m, nil
}

// recordEvaluation creates a span and records metrics for one Evaluate
// call. If OTel is not configured this is a no-op; instrumentation never
// breaks an evaluation.
func (s *Studio) recordEvaluation(ctx context.Context, a Assessment) {
	if s.tracer != nil {
		_, span := s.tracer.Start(ctx, "archstudio.evaluate",
			trace.WithAttributes(
				attribute.Int("design.score", a.Score),
				attribute.Int("design.findings", len(a.Findings)),
			),
		)
		span.SetStatus(codes.Ok, "")
		span.End()
	}

	if s.metrics == nil {
		return
	}
	s.metrics.scoreHistogram.Record(ctx, int64(a.Score))
	s.metrics.evalCounter.Add(ctx, 1)
	for _, f := range a.Findings {
		s.metrics.findingCounter.Add(ctx, 1,
			metric.WithAttributes(attribute.String("severity", f.Severity.String())))
	}
}

// recordSimulation creates a span and records metrics for one Simulate
// call.
func (s *Studio) recordSimulation(ctx context.Context, scenario string, protectionPct int, blockedStages, totalStages int) {
	if s.tracer != nil {
		_, span := s.tracer.Start(ctx, "archstudio.simulate",
			trace.WithAttributes(
				attribute.String("scenario", scenario),
				attribute.Int("protection_pct", protectionPct),
				attribute.Int("stages.blocked", blockedStages),
				attribute.Int("stages.total", totalStages),
			),
		)
		span.SetStatus(codes.Ok, "")
		span.End()
	}

	if s.metrics == nil {
		return
	}
	s.metrics.protectionHistogram.Record(ctx, int64(protectionPct),
		metric.WithAttributes(attribute.String("scenario", scenario)))
}
