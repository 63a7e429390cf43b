// Package keel resolves raw configuration data into a queryable
// configuration container at process startup.
//
// Keel wraps a nested mapping (typically parsed from config.yaml or
// config.json) in a Config container that resolves {key} placeholders
// inside string values on every read, with cycle detection, domain-scoped
// lookup, and derived views.
//
// # Key Components
//
//   - Config: the configuration container with placeholder resolution,
//     domain-scoped Get/Set, and Sub/SubParent derivation
//   - overlay: the secrets overlay pipeline that fills ${name} placeholders
//     from environment variables and a secrets file before the container
//     is built
//   - source: config.yaml/config.json discovery and parsing
//   - bootstrap: CreateEnv orchestration returning an Environment handle
//
// # Placeholder Syntax
//
// Two placeholder syntaxes never interact:
//
//   - ${name} / $name — overlay-level, filled once against environment
//     variables then the secrets file, before the container exists
//   - {name} — container-level, resolved against the container's own key
//     space every time a value is read
//
// # Example Usage
//
//	cfg := keel.New(map[string]any{
//	    "host": "db.local",
//	    "dsn":  "postgres://{host}/app",
//	})
//
//	dsn, err := cfg.String("dsn")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// dsn == "postgres://db.local/app"
//
// See the bootstrap package for the full startup sequence combining
// discovery, the secrets overlay, and logging setup.
package keel
