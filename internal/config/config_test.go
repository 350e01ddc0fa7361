package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./data/local", cfg.LocalRoot)
	assert.Equal(t, time.Local, cfg.Location)
	assert.True(t, cfg.SyncEnabled)
	assert.Equal(t, time.Hour, cfg.NetMonitor.MonitorInterval)
}

func TestLoadResolvesNamedLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	cfg := NewDefaultConfig()
	cfg.LocationName = "America/Montevideo"
	cfg.LocalRoot = dir
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "America/Montevideo", loaded.Location.String())
}

func TestLoadRejectsInvalidLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	cfg := NewDefaultConfig()
	cfg.LocationName = "Not/A_Real_Zone"
	cfg.LocalRoot = dir
	require.NoError(t, cfg.SaveToFile(path))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvironmentOverridesLocalRoot(t *testing.T) {
	t.Setenv("WORKTIME_TRACKER_LOCAL_ROOT", "/tmp/override-root")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override-root", cfg.LocalRoot)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.LocalRoot = t.TempDir()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}
