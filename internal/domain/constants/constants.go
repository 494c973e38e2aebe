// Package constants contains configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events as Pub/Sub-style pushes to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
