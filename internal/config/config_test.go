package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.Cache.Size)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Empty(t, cfg.Clone.Profile)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
cache:
  size: 64
log:
  level: debug
  development: true
clone:
  profile: protect.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mirror.yaml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "protect.yaml", cfg.Clone.Profile)
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  size: 8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Cache.Size)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MIRROR_CACHE_SIZE", "32")
	t.Setenv("MIRROR_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Cache.Size)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mirror.yaml"), []byte("cache:\n  size: 0\n"), 0o644))

	_, err := Load("")
	assert.ErrorContains(t, err, "cache.size must be positive")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mirror.yaml"), []byte("cache: [\n"), 0o644))

	_, err = Load("")
	assert.ErrorContains(t, err, "failed to read config file")
}
