package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/keel"
	"github.com/sagarc03/keel/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFind_YAML(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "config.yaml", "host: db.local\nport: 5432\n")

	params, path, err := source.Find(dir)
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Equal(t, "db.local", params["host"])
	assert.Equal(t, 5432, params["port"])
}

func TestFind_JSON(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "config.json", `{"host": "db.local"}`)

	params, path, err := source.Find(dir)
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Equal(t, "db.local", params["host"])
}

func TestFind_YAMLBeforeJSON(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "config.yaml", "from: yaml\n")
	writeFile(t, dir, "config.json", `{"from": "json"}`)

	params, path, err := source.Find(dir)
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Equal(t, "yaml", params["from"])
}

func TestFind_NoConfig(t *testing.T) {
	_, _, err := source.Find(t.TempDir())
	require.ErrorIs(t, err, keel.ErrNoConfig)
}

func TestFind_ParseFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "\t: broken [")
	// a parse failure must not fall through to config.json
	writeFile(t, dir, "config.json", `{"from": "json"}`)

	_, _, err := source.Find(dir)
	require.ErrorIs(t, err, keel.ErrSourceRead)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "host = 'db.local'")

	_, err := source.Load(path)
	require.ErrorIs(t, err, keel.ErrUnsupportedSource)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := source.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.ErrorIs(t, err, keel.ErrSourceRead)
}
