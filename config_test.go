package keel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/keel"
)

func TestGet_ChainedPlaceholders(t *testing.T) {
	cfg := keel.New(map[string]any{
		"a": "x",
		"b": "{a}",
		"c": "{b}",
	})

	v, err := cfg.Get("c")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestGet_RepeatedTokenIsNotACycle(t *testing.T) {
	cfg := keel.New(map[string]any{
		"a": "x",
		"b": "{a}-{a}",
	})

	v, err := cfg.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "x-x", v)
}

func TestGet_SelfReference(t *testing.T) {
	cfg := keel.New(map[string]any{
		"b": "{b}",
	})

	_, err := cfg.Get("b")
	require.ErrorIs(t, err, keel.ErrCircularReference)
}

func TestGet_MutualReference(t *testing.T) {
	cfg := keel.New(map[string]any{
		"a": "{b}",
		"b": "{a}",
	})

	_, err := cfg.Get("a")
	require.ErrorIs(t, err, keel.ErrCircularReference)
	assert.Contains(t, err.Error(), "{b}")
}

func TestGet_NullNormalization(t *testing.T) {
	cfg := keel.New(map[string]any{
		"a": "NULL",
		"b": "None",
		"c": "null",
		"d": "none",
	})

	for _, key := range []string{"a", "b", "c", "d"} {
		v, err := cfg.Get(key)
		require.NoError(t, err)
		assert.Equal(t, "", v, "key %s", key)
	}
}

func TestGet_MissingKey(t *testing.T) {
	cfg := keel.New(nil)

	_, err := cfg.Get("missing")
	require.ErrorIs(t, err, keel.ErrMissingKey)
	assert.Contains(t, err.Error(), "missing")

	v, err := cfg.Get("missing", keel.WithDefault(""))
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestGet_MissingPlaceholderTarget(t *testing.T) {
	cfg := keel.New(map[string]any{
		"url": "https://{host}/api",
	})

	_, err := cfg.Get("url")
	require.ErrorIs(t, err, keel.ErrMissingKey)
	assert.Contains(t, err.Error(), "host")
}

func TestGet_DefaultIsResolved(t *testing.T) {
	cfg := keel.New(map[string]any{
		"host": "db.local",
	})

	v, err := cfg.Get("dsn", keel.WithDefault("postgres://{host}/app"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://db.local/app", v)
}

func TestGet_NilDefault(t *testing.T) {
	cfg := keel.New(nil)

	v, err := cfg.Get("missing", keel.WithDefault(nil))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGet_NonStringScalarsPassThrough(t *testing.T) {
	cfg := keel.New(map[string]any{
		"port":  8080,
		"debug": true,
		"ratio": 0.5,
		"empty": nil,
	})

	for key, want := range map[string]any{
		"port":  8080,
		"debug": true,
		"ratio": 0.5,
		"empty": nil,
	} {
		v, err := cfg.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, v, "key %s", key)
	}
}

func TestGet_ResolvesInsideSequencesAndMappings(t *testing.T) {
	cfg := keel.New(map[string]any{
		"host": "db.local",
		"port": 5432,
		"replicas": []any{
			"{host}:1",
			"{host}:2",
		},
		"db": map[string]any{
			"addr": "{host}:{port}",
			"pool": 10,
		},
	})

	v, err := cfg.Get("replicas")
	require.NoError(t, err)
	assert.Equal(t, []any{"db.local:1", "db.local:2"}, v)

	v, err = cfg.Get("db")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"addr": "db.local:5432", "pool": 10}, v)
}

func TestGet_WithParams(t *testing.T) {
	cfg := keel.New(map[string]any{
		"host": "prod.local",
		"dsn":  "postgres://{host}/app",
	})

	v, err := cfg.Get("dsn", keel.WithParams(map[string]any{"host": "test.local"}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://test.local/app", v)
}

func TestDomain_Scoping(t *testing.T) {
	cfg := keel.New(nil)
	cfg.SetDomain("d", "x", 1)

	v, err := cfg.Get("x", keel.WithDomain("d"))
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// the non-domain lookup must not see the domain key
	_, err = cfg.Get("x")
	require.ErrorIs(t, err, keel.ErrMissingKey)
}

func TestDomain_NoFallbackToTopLevel(t *testing.T) {
	cfg := keel.New(map[string]any{
		"x": "top",
		"d": map[string]any{"y": 1},
	})

	_, err := cfg.Get("x", keel.WithDomain("d"))
	require.ErrorIs(t, err, keel.ErrMissingKey)
}

func TestDomain_MissDefaults(t *testing.T) {
	cfg := keel.New(map[string]any{
		"queue": map[string]any{"exchange": nil},
	})

	// explicit nil default: domain values may be intentionally empty
	v, err := cfg.Get("exchange", keel.WithDomain("queue"), keel.WithDefault(nil))
	require.NoError(t, err)
	assert.Equal(t, "", v)

	// any other default is returned as-is, without resolution
	v, err = cfg.Get("exchange", keel.WithDomain("queue"), keel.WithDefault("{host}"))
	require.NoError(t, err)
	assert.Equal(t, "{host}", v)

	_, err = cfg.Get("exchange", keel.WithDomain("queue"))
	require.ErrorIs(t, err, keel.ErrMissingKey)
}

func TestDomain_AbsentDomainFallsThrough(t *testing.T) {
	cfg := keel.New(map[string]any{
		"x": "top",
	})

	v, err := cfg.Get("x", keel.WithDomain("nosuch"))
	require.NoError(t, err)
	assert.Equal(t, "top", v)
}

func TestOverride_AlwaysWins(t *testing.T) {
	cfg := keel.NewWithOverride(
		map[string]any{"k": "a"},
		map[string]any{"k": "Z"},
	)

	v, err := cfg.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "Z", v)

	sub := cfg.Sub(map[string]any{"k": "b"})
	v, err = sub.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "Z", v)

	layered := cfg.SubParent(keel.New(map[string]any{"k": "c"}))
	v, err = layered.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "Z", v)
}

func TestSub_DoesNotMutateParent(t *testing.T) {
	cfg := keel.New(map[string]any{"a": "1"})

	sub := cfg.Sub(map[string]any{"a": "2", "b": "3"})

	v, err := sub.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	v, err = cfg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	assert.False(t, cfg.Has("b"))
}

func TestSubParent_LayersOverDefaults(t *testing.T) {
	parent := keel.New(map[string]any{"a": "p", "b": "p"})
	child := keel.New(map[string]any{"b": "c"})

	merged := child.SubParent(parent)

	v, err := merged.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "p", v)

	v, err = merged.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestKeys_SortedAndOverrideMerged(t *testing.T) {
	cfg := keel.NewWithOverride(
		map[string]any{"b": 1, "a": 2},
		map[string]any{"c": 3},
	)

	assert.Equal(t, []string{"a", "b", "c"}, cfg.Keys())
	assert.Equal(t, 3, cfg.Len())
	assert.True(t, cfg.Has("c"))
	assert.False(t, cfg.Has("d"))
}

func TestSet(t *testing.T) {
	cfg := keel.New(nil)
	cfg.Set("k", "v")

	v, err := cfg.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestAllSettings(t *testing.T) {
	cfg := keel.New(map[string]any{
		"host": "db.local",
		"dsn":  "postgres://{host}/app",
	})

	settings, err := cfg.AllSettings()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"host": "db.local",
		"dsn":  "postgres://db.local/app",
	}, settings)
}
