//go:build !gcloud

package config

// Validate accepts any local setup; an empty NATS_URL disables publishing.
func (c *PubSubConfig) Validate() error {
	return nil
}
