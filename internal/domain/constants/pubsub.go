// Package constants holds shared string constants.
package constants

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint in Pub/Sub push format.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
