package keel

// Well-known configuration keys.
const (
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyDebug      = "debug"
	KeyTesting    = "testing"
	KeyDateFormat = "date_format"
)

// Reserved keys written by bootstrap. They are overwritten unconditionally,
// even when present in the configuration file.
const (
	KeyEnvironment = "_environment"
	KeyVersion     = "_version"
	KeyInstanceID  = "_instance_id"
	KeyStartedAt   = "_started_at"
)

// Environment variables consumed by the overlay and bootstrap.
const (
	// EnvEnvironment names the active environment (e.g. "prod", "staging").
	EnvEnvironment = "ENVIRONMENT"
	// EnvSecrets holds the full path to the secrets file.
	EnvSecrets = "SECRETS"
)

// Defaults injected by bootstrap when the configuration file is silent.
const (
	DefaultLogLevel   = "info"
	DefaultDateFormat = "2006-01-02T15:04:05Z"
)
