package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.APIPort)
	assert.Equal(t, "127.0.0.1:3000", cfg.APIAddr)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api-port: 8088\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8088", cfg.APIAddr)
	assert.Equal(t, path, cfg.ConfigPath)

	t.Setenv("CLOUDGUARD_API_ADDR", "0.0.0.0:9999")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", cfg.APIAddr)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLOUDGUARD_API_PORT", "70000")

	_, err := loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api-port")
}
