// Package overlay implements the secrets overlay pipeline: a two-stage
// substitution pass that fills ${name} and $name placeholders in raw
// configuration data before the configuration container is built.
//
// # Stages
//
// The pipeline runs two named stages in a fixed order:
//
//  1. environment — every string leaf is expanded against the process
//     environment variables
//  2. secrets — if a secrets file exists at the resolved path, remaining
//     placeholders are expanded against its key/value mapping
//
// Because the environment stage runs strictly first, environment variables
// take precedence over secrets-file values for a shared placeholder name.
//
// # Non-errors
//
// Two conditions are deliberately not errors:
//
//   - an unmatched placeholder is left verbatim in the output
//   - a missing secrets file skips the secrets stage entirely
//
// A secrets file that exists but fails to parse is fatal.
//
// # Secrets File Convention
//
// The secrets file path resolves, in order, to <dir>/<environment>.yaml
// when a secrets directory is given, the full path in the SECRETS
// environment variable, or secrets/<environment>.yaml.
//
// # Usage
//
//	raw, _, err := source.Find("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	raw, err = overlay.Apply(raw, overlay.Options{Environment: "prod"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := keel.New(raw)
package overlay
