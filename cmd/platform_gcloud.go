//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/meditrack/internal/config"
	"github.com/KasumiMercury/meditrack/internal/infra/pubsub"
	"github.com/KasumiMercury/meditrack/internal/observability"
	"github.com/KasumiMercury/meditrack/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	publisher, err := pubsub.NewGCloudPublisher(ctx, pubsub.GCloudPublisherConfig{
		ProjectID: cfg.PubSub.GCloudProjectID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub publisher initialized",
		"project_id", cfg.PubSub.GCloudProjectID,
	)

	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = cfg.Service.Name
	}

	env := logging.EnvProd
	if os.Getenv("ENV") != "" {
		env = logging.Environment(cfg.Service.Environment)
	}

	return observability.Init(ctx, observability.Config{
		Service: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment: env,
		LogLevel:    logging.ParseLevel(cfg.Log.Level),
		ProjectID:   cfg.PubSub.GCloudProjectID,
	})
}
