package source

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/keel"
)

// candidates are the file names Find tries, in order.
var candidates = []string{"config.yaml", "config.json"}

// Find locates a configuration file in dir (the working directory when
// empty) and parses it. It returns the raw mapping and the path of the
// file used. Neither candidate present is ErrNoConfig.
func Find(dir string) (map[string]any, string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		slog.Debug("trying config path", "path", path)

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		params, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		slog.Info("loaded configuration", "path", path)
		return params, path, nil
	}

	return nil, "", fmt.Errorf("%w in %s (tried %s)",
		keel.ErrNoConfig, dir, strings.Join(candidates, ", "))
}

// Load parses a single configuration file. The extension selects the
// parser: .yaml/.yml or .json.
func Load(path string) (map[string]any, error) {
	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", keel.ErrUnsupportedSource, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configuration %s: %w: %w", path, keel.ErrSourceRead, err)
	}

	var params map[string]any
	if err := unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("configuration %s: %w: %w", path, keel.ErrSourceRead, err)
	}
	return params, nil
}
