package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"

	"github.com/KasumiMercury/meditrack/internal/observability/logging"
	"github.com/KasumiMercury/meditrack/internal/observability/metrics"
	"github.com/KasumiMercury/meditrack/internal/observability/tracing"
)

type Config struct {
	Service     logging.ServiceInfo
	Environment logging.Environment
	LogLevel    slog.Level
	ProjectID   string
}

// Resources holds the process wide telemetry set up by Init.
type Resources struct {
	Logger  *slog.Logger
	Tracing *tracing.Provider
	Metrics *metrics.Provider
}

// Init installs the default slog logger, the global tracer and meter
// providers and the W3C propagator.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := logging.NewLogger(os.Stdout, logging.Config{
		Level:       cfg.LogLevel,
		Service:     cfg.Service,
		Environment: cfg.Environment,
		ProjectID:   cfg.ProjectID,
	})
	slog.SetDefault(logger)

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer provider: %w", err)
	}

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		_ = tp.Shutdown(ctx)

		return nil, fmt.Errorf("failed to create meter provider: %w", err)
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetMeterProvider(mp.MeterProvider())
	tracing.SetupPropagation()

	return &Resources{
		Logger:  logger,
		Tracing: tp,
		Metrics: mp,
	}, nil
}

func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(
		r.Tracing.Shutdown(ctx),
		r.Metrics.Shutdown(ctx),
	)
}
