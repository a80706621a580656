// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Role lifecycle operation names, used as metric labels and log fields.
const (
	OperationActivate   = "activate"
	OperationDeactivate = "deactivate"
	OperationRevoke     = "revoke"
)
