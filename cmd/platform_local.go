//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/meditrack/internal/config"
	"github.com/KasumiMercury/meditrack/internal/infra/pubsub"
	"github.com/KasumiMercury/meditrack/internal/observability"
	"github.com/KasumiMercury/meditrack/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, event publishing disabled")

		return nil, nil
	}

	publisher, err := pubsub.NewNATSPublisher(ctx, pubsub.NATSPublisherConfig{
		URL: cfg.PubSub.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)

	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		Service: logging.ServiceInfo{
			Name:    cfg.Service.Name,
			Version: Version,
		},
		Environment: logging.Environment(cfg.Service.Environment),
		LogLevel:    logging.ParseLevel(cfg.Log.Level),
	})
}
