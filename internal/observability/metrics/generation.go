package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// GenerationMetrics instruments notification generation runs. A nil
// *GenerationMetrics records nothing.
type GenerationMetrics struct {
	runs     metric.Int64Counter
	created  metric.Int64Counter
	duration metric.Float64Histogram
}

func NewGenerationMetrics(meter metric.Meter) (*GenerationMetrics, error) {
	runs, err := meter.Int64Counter(
		"notification.generation.runs",
		metric.WithDescription("Generation runs by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create run counter: %w", err)
	}

	created, err := meter.Int64Counter(
		"notification.generation.created",
		metric.WithDescription("Notifications persisted by generation runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create created counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"notification.generation.duration",
		metric.WithDescription("Duration of generation runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &GenerationMetrics{
		runs:     runs,
		created:  created,
		duration: duration,
	}, nil
}

func (m *GenerationMetrics) RecordRun(ctx context.Context, outcome string, created int, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	m.runs.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)

	if created > 0 {
		m.created.Add(ctx, int64(created))
	}
}
