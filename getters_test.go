package keel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/keel"
)

func TestTypedGetters(t *testing.T) {
	cfg := keel.New(map[string]any{
		"name":    "keel",
		"port":    "8080",
		"debug":   "true",
		"ratio":   "0.5",
		"timeout": "30s",
		"hosts":   []any{"a", "b"},
		"db":      map[string]any{"host": "db.local"},
	})

	s, err := cfg.String("name")
	require.NoError(t, err)
	assert.Equal(t, "keel", s)

	n, err := cfg.Int("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, n)

	b, err := cfg.Bool("debug")
	require.NoError(t, err)
	assert.True(t, b)

	f, err := cfg.Float("ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	d, err := cfg.Duration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	ss, err := cfg.Strings("hosts")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ss)

	m, err := cfg.StringMap("db")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"host": "db.local"}, m)
}

func TestTypedGetters_ResolveBeforeConverting(t *testing.T) {
	cfg := keel.New(map[string]any{
		"base_port": 9000,
		"port":      "{base_port}",
	})

	n, err := cfg.Int("port")
	require.NoError(t, err)
	assert.Equal(t, 9000, n)
}

func TestTypedGetters_ConversionFailure(t *testing.T) {
	cfg := keel.New(map[string]any{
		"port": "not-a-number",
	})

	_, err := cfg.Int("port")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestTypedGetters_PropagateMissingKey(t *testing.T) {
	cfg := keel.New(nil)

	_, err := cfg.String("missing")
	require.ErrorIs(t, err, keel.ErrMissingKey)
}

func TestUnmarshal(t *testing.T) {
	cfg := keel.New(map[string]any{
		"host": "db.local",
		"db": map[string]any{
			"dsn":  "postgres://{host}/app",
			"pool": "10",
		},
	})

	type dbConfig struct {
		DSN  string `mapstructure:"dsn"`
		Pool int    `mapstructure:"pool"`
	}
	type appConfig struct {
		Host string   `mapstructure:"host"`
		DB   dbConfig `mapstructure:"db"`
	}

	var app appConfig
	require.NoError(t, cfg.Unmarshal(&app))
	assert.Equal(t, "db.local", app.Host)
	assert.Equal(t, "postgres://db.local/app", app.DB.DSN)
	assert.Equal(t, 10, app.DB.Pool)

	var db dbConfig
	require.NoError(t, cfg.UnmarshalKey("db", &db))
	assert.Equal(t, "postgres://db.local/app", db.DSN)
}
