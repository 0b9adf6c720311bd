// Package constants holds shared domain-level constants.
package constants

const (
	// Pub/Sub provider types
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	// Deployment environments
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
