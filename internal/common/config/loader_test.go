package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfigFile(t, "app:\n  name: test-service\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-service", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5000, cfg.Server.ReadTimeout)
	assert.Equal(t, "static", cfg.Static.Dir)
	assert.Equal(t, "/static/index.html", cfg.Static.IndexPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_Overrides(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: activities
  environment: production
server:
  port: 9090
  shutdown_timeout: 2000
registry:
  path: configs/activities.json
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "configs/activities.json", cfg.Registry.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 99999\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoadFromFile_InvalidIndexPath(t *testing.T) {
	path := writeConfigFile(t, "static:\n  index_path: static/index.html\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index_path")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, GetDuration(5000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
