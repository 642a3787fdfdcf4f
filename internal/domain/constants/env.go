package constants

// Deployment environments reported by env.env.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
