package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// TransitionSubscription is the subscription name reported by the local publisher.
const TransitionSubscription = "projects/local/subscriptions/equipment-transitions"
