//go:build gcloud

package config

import (
	"errors"
	"os"
)

// Validate resolves the Pub/Sub project, falling back to the project Cloud
// Run exposes as GOOGLE_CLOUD_PROJECT.
func (c *PubSubConfig) Validate() error {
	if c.GCloudProjectID == "" {
		c.GCloudProjectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}

	if c.GCloudProjectID == "" {
		return errors.New("GCLOUD_PROJECT_ID or GOOGLE_CLOUD_PROJECT is required for event publishing")
	}

	if c.NatsURL != "" {
		return errors.New("NATS_URL is not supported in gcloud builds")
	}

	return nil
}
