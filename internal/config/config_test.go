package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestPaths(t *testing.T) {
	root := setXDG(t)

	assert.Equal(t, filepath.Join(root, "config", "nrhelper", "config.toml"), GetConfigFilePath())
	assert.Equal(t, filepath.Join(root, "data", "nrhelper", "datasets"), GetDatasetLibraryPath())
	assert.Equal(t, filepath.Join(root, "cache", "nrhelper"), GetCacheDir())
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	setXDG(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "genesys_merged.json", cfg.DefaultDataset)
	assert.Equal(t, "desc", cfg.Sort)
	assert.Equal(t, "info", cfg.LogLevel)

	_, err = os.Stat(GetConfigFilePath())
	assert.NoError(t, err)
}

func TestLoadConfig_KeepsDefaultsForMissingKeys(t *testing.T) {
	setXDG(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("sort = \"asc\"\n"), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "asc", cfg.Sort)
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
}

func TestLoadConfig_Invalid(t *testing.T) {
	setXDG(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("sort = "), 0o644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSetDefaultDataset(t *testing.T) {
	setXDG(t)

	require.NoError(t, SetDefaultDataset("staples.json"))
	name, err := GetDefaultDataset()
	require.NoError(t, err)
	assert.Equal(t, "staples.json", name)
}

func TestGetDatasetPath(t *testing.T) {
	setXDG(t)

	lib := GetDatasetLibraryPath()
	require.NoError(t, os.MkdirAll(lib, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "cards.json"), []byte("{}"), 0o644))

	path, err := GetDatasetPath("cards.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(lib, "cards.json"), path)

	local := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(local, []byte("{}"), 0o644))
	path, err = GetDatasetPath(local)
	require.NoError(t, err)
	assert.Equal(t, local, path)

	_, err = GetDatasetPath("nope.json")
	assert.Error(t, err)
}
