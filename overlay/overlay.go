package overlay

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/keel"
)

// Options control a single overlay run.
type Options struct {
	// Environment is the active environment name. Empty falls back to the
	// ENVIRONMENT variable.
	Environment string
	// SecretsDir is the directory holding <environment>.yaml secrets files.
	// Empty falls back to the SECRETS variable (a full file path), then to
	// the secrets/<environment>.yaml convention.
	SecretsDir string
}

// stage is one named substitution pass over the configuration tree.
type stage struct {
	name   string
	lookup func(name string) (string, bool)
}

// Apply runs the overlay pipeline on a raw configuration mapping and
// returns a new mapping; the input is never modified. The environment
// stage always runs; the secrets stage runs only when the secrets file
// exists, so environment variables take precedence over secrets-file
// values.
func Apply(params map[string]any, opts Options) (map[string]any, error) {
	environment := opts.Environment
	if environment == "" {
		environment = os.Getenv(keel.EnvEnvironment)
	}

	stages := []stage{
		{name: "environment", lookup: os.LookupEnv},
	}

	path := ResolveSecretsPath(environment, opts.SecretsDir)
	secrets, err := loadSecrets(path)
	if err != nil {
		return nil, err
	}
	if secrets == nil {
		slog.Debug("no secrets file, skipping secrets stage", "path", path)
	} else {
		slog.Debug("loaded secrets file", "path", path, "keys", len(secrets))
		stages = append(stages, stage{
			name: "secrets",
			lookup: func(name string) (string, bool) {
				v, ok := secrets[name]
				return v, ok
			},
		})
	}

	out := any(params)
	for _, st := range stages {
		slog.Debug("applying overlay stage", "stage", st.name)
		out = expandTree(out, st.lookup)
	}
	return out.(map[string]any), nil
}

// ResolveSecretsPath returns the secrets file path for an environment.
func ResolveSecretsPath(environment, dir string) string {
	if dir != "" {
		return filepath.Join(dir, environment+".yaml")
	}
	if path := os.Getenv(keel.EnvSecrets); path != "" {
		return path
	}
	return filepath.Join("secrets", environment+".yaml")
}

// loadSecrets parses the secrets file into a flat string mapping. A
// missing file returns nil without error; any other failure is fatal.
func loadSecrets(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("secrets file %s: %w: %w", path, keel.ErrSourceRead, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("secrets file %s: %w: %w", path, keel.ErrSourceRead, err)
	}

	secrets := make(map[string]string, len(raw))
	for k, v := range raw {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("secrets file %s: key %s: %w: %w", path, k, keel.ErrSourceRead, err)
		}
		secrets[k] = s
	}
	return secrets, nil
}
