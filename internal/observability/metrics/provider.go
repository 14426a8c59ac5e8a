package metrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

const meterName = "github.com/KasumiMercury/meditrack"

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

type Provider struct {
	mp *sdkmetric.MeterProvider
}

func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.mp
}

func (p *Provider) Meter() metric.Meter {
	return p.mp.Meter(meterName)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

func newNoopProvider(cfg Config) *Provider {
	// A MeterProvider without readers records nothing.
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(newResource(cfg)),
	)

	return &Provider{mp: mp}
}
