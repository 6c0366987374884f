// Package constants defines domain-wide constant values.
package constants

// Pub/Sub provider types.
const (
	// PubSubProviderLocal posts events to a local HTTP endpoint, simulating
	// push delivery for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
