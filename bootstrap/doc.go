// Package bootstrap wires configuration discovery, the secrets overlay,
// and logging into a single startup call.
//
// CreateEnv runs the full sequence: resolve the active environment name,
// locate and parse the configuration file, run the secrets overlay, inject
// reserved metadata keys, validate core settings, and configure the
// process logger. It returns an Environment handle holding the resolved
// configuration container.
//
// When no environment name can be resolved (neither the option nor the
// ENVIRONMENT variable is set), CreateEnv assumes a test run and returns a
// bare Environment with an empty container instead of failing.
//
// # Reserved Keys
//
// These keys are written unconditionally, even when present in the
// configuration file: _environment, _version, _instance_id, _started_at.
//
// # Usage
//
//	env, err := bootstrap.CreateEnv(bootstrap.Options{
//	    ConfigPath:  "/etc/keel",
//	    Environment: "prod",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dsn, err := env.Config.String("dsn")
package bootstrap
