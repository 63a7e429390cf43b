package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sagarc03/keel"
	"github.com/sagarc03/keel/overlay"
	"github.com/sagarc03/keel/source"
)

// Version is the build version injected via ldflags. It feeds the
// _version reserved key.
var Version = "dev"

// Options control environment creation.
type Options struct {
	// ConfigPath is a directory to search for config.yaml/config.json, or
	// a direct path to a configuration file. Empty means the working
	// directory.
	ConfigPath string
	// Environment is the active environment name. Empty falls back to the
	// ENVIRONMENT variable.
	Environment string
	// SecretsDir is passed through to the secrets overlay.
	SecretsDir string
	// Quiet caps logging at error level.
	Quiet bool
}

// Environment is the handle returned by CreateEnv.
type Environment struct {
	// RootPath is the directory containing the configuration file. Empty
	// for a test environment.
	RootPath string
	Config   *keel.Config
	Logger   *slog.Logger
}

// settings holds the core keys every environment carries, validated after
// the overlay and defaults are applied.
type settings struct {
	LogLevel   string `validate:"required,oneof=debug info warn error"`
	LogFormat  string `validate:"required,oneof=json console"`
	DateFormat string `validate:"required"`
	Debug      bool
	Testing    bool
}

// CreateEnv builds the process environment: configuration discovery, the
// secrets overlay, reserved keys, core-settings validation, and logger
// setup. Every failure is fatal; there is no partial success.
func CreateEnv(opts Options) (*Environment, error) {
	setupProvisionalLogging(opts.Quiet)

	environment := opts.Environment
	if environment == "" {
		environment = os.Getenv(keel.EnvEnvironment)
	}
	slog.Info("using environment", "environment", environment)

	if environment == "" {
		slog.Debug("no environment found, assuming tests are running")
		return &Environment{Config: keel.New(nil), Logger: slog.Default()}, nil
	}

	params, rootPath, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	params, err = overlay.Apply(params, overlay.Options{
		Environment: environment,
		SecretsDir:  opts.SecretsDir,
	})
	if err != nil {
		return nil, err
	}

	cfg := keel.New(params)

	// defaults for keys the file is silent on
	if !cfg.Has(keel.KeyLogLevel) {
		cfg.Set(keel.KeyLogLevel, keel.DefaultLogLevel)
	}
	if !cfg.Has(keel.KeyLogFormat) {
		format := "console"
		if environment == "prod" || environment == "production" {
			format = "json"
		}
		cfg.Set(keel.KeyLogFormat, format)
	}
	if !cfg.Has(keel.KeyDateFormat) {
		cfg.Set(keel.KeyDateFormat, keel.DefaultDateFormat)
	}

	// reserved keys win over anything the file supplied
	now := time.Now().UTC()
	cfg.Set(keel.KeyEnvironment, environment)
	cfg.Set(keel.KeyVersion, Version)
	cfg.Set(keel.KeyInstanceID, uuid.NewString())

	s, err := coreSettings(cfg)
	if err != nil {
		return nil, err
	}

	if err := validateDateFormat(s.DateFormat); err != nil {
		return nil, err
	}
	cfg.Set(keel.KeyStartedAt, now.Format(s.DateFormat))

	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("validate core settings: %w", err)
	}

	logger := newLogger(s.LogFormat, s.LogLevel, opts.Quiet)
	slog.SetDefault(logger)
	bridgeStdLog()

	logger.Info("read config and created environment",
		"root", rootPath, "environment", environment, "version", Version)

	return &Environment{RootPath: rootPath, Config: cfg, Logger: logger}, nil
}

// loadConfig accepts either a directory to search or a direct file path.
func loadConfig(path string) (map[string]any, string, error) {
	if path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			params, err := source.Load(path)
			if err != nil {
				return nil, "", err
			}
			return params, filepath.Dir(path), nil
		}
	}

	params, used, err := source.Find(path)
	if err != nil {
		return nil, "", err
	}
	return params, filepath.Dir(used), nil
}

// coreSettings reads the core keys individually. Keys outside the core set
// stay unresolved until first read, so an unrelated bad placeholder does
// not abort startup.
func coreSettings(cfg *keel.Config) (settings, error) {
	var s settings
	var err error

	if s.LogLevel, err = cfg.String(keel.KeyLogLevel); err != nil {
		return s, err
	}
	s.LogLevel = strings.ToLower(s.LogLevel)

	if s.LogFormat, err = cfg.String(keel.KeyLogFormat); err != nil {
		return s, err
	}
	s.LogFormat = strings.ToLower(s.LogFormat)

	if s.DateFormat, err = cfg.String(keel.KeyDateFormat); err != nil {
		return s, err
	}
	if s.Debug, err = cfg.Bool(keel.KeyDebug, keel.WithDefault(false)); err != nil {
		return s, err
	}
	if s.Testing, err = cfg.Bool(keel.KeyTesting, keel.WithDefault(false)); err != nil {
		return s, err
	}
	return s, nil
}

// validateDateFormat formats a fixed reference timestamp with the layout
// and parses it back.
func validateDateFormat(layout string) error {
	ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	if _, err := time.Parse(layout, ref.Format(layout)); err != nil {
		return fmt.Errorf("%w %q: %w", keel.ErrInvalidDateFormat, layout, err)
	}
	return nil
}
