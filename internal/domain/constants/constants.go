// Package constants holds provider identifiers shared by config and infra.
package constants

const (
	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// EnvDevelop is the env.env value of local development deployments.
const EnvDevelop = "develop"

// UnknownActor is recorded in change history when the session carries no usable identity.
const UnknownActor = "desconhecido"
