// Package constants holds string constants shared across layers.
package constants

const (
	// EnvDevelop is the env value used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events as HTTP push requests to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// UploadKindProfile is the storage folder for user profile pictures.
	UploadKindProfile = "profile"
	// UploadKindProduct is the storage folder for inventory product pictures.
	UploadKindProduct = "product"
)
