package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnv_PrefixAndMapping(t *testing.T) {
	environ := []string{
		"FLUXA_LMSTUDIO_BASE_URL=http://example:1234/v1",
		"FLUXA_DATABASE_MAX_CONNECTIONS=7",
		"FLUXA_APP_DEBUG=true",
		"HOME=/home/nobody",
		"FLUXA_CONFIG=/tmp/override.yaml",
	}

	raw := readEnv("FLUXA_", environ, "CONFIG")

	lmstudio, ok := raw["lmstudio"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "http://example:1234/v1", lmstudio["base_url"])

	database, ok := raw["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "7", database["max_connections"])

	app, ok := raw["app"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "true", app["debug"])

	// Non-prefixed and bootstrap variables never leak in.
	assert.NotContains(t, raw, "home")
	assert.NotContains(t, raw, "config")
}

func TestReadEnv_CaseInsensitive(t *testing.T) {
	raw := readEnv("FLUXA_", []string{"fluxa_Server_Host=localhost"})

	server, ok := raw["server"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost", server["host"])
}

func TestReadEnv_NoMatches(t *testing.T) {
	raw := readEnv("FLUXA_", []string{"PATH=/bin", "TERM=xterm"})
	assert.Empty(t, raw)
}

func TestReadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluxa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Server:\n  Port: 3000\n  host: files\n"), 0o644))

	raw, err := readFile(path)
	require.NoError(t, err)

	// Key paths are normalized to lower case.
	server, ok := raw["server"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3000, server["port"])
	assert.Equal(t, "files", server["host"])
}

func TestReadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluxa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database": {"max_connections": 9}}`), 0o644))

	raw, err := readFile(path)
	require.NoError(t, err)

	database, ok := raw["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(9), database["max_connections"])
}

func TestReadFile_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluxa.toml")
	require.NoError(t, os.WriteFile(path, []byte("[lmstudio]\nstream = false\n"), 0o644))

	raw, err := readFile(path)
	require.NoError(t, err)

	lmstudio, ok := raw["lmstudio"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, lmstudio["stream"])
}

func TestReadFile_AbsentIsEmptyNotError(t *testing.T) {
	raw, err := readFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestReadFile_MalformedIsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n\tport: [unclosed"), 0o644))

	_, err := readFile(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}

func TestResolveFilePath_ExplicitWins(t *testing.T) {
	assert.Equal(t, "/etc/fluxa/custom.yaml", resolveFilePath("/etc/fluxa/custom.yaml"))
}

func TestResolveFilePath_NoCandidates(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	assert.Equal(t, "", resolveFilePath(""))
}

func TestResolveFilePath_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fluxa.json"), []byte(`{}`), 0o644))

	assert.Equal(t, "fluxa.json", resolveFilePath(""))
}
