/**
 * CONTEXT:   Tracker-wide configuration, adapted from the teacher's DaemonConfig
 *            (internal/config/daemon_config.go) onto the file-engine's own knobs
 * INPUT:     A JSON config file (optional) plus WORKTIME_TRACKER_-prefixed environment
 *            variable overrides
 * OUTPUT:    A validated Config ready to build the path resolver, liveness monitor,
 *            backup service, accessor factory, and notification queue
 * CHANGE:    Initial implementation.
 * RISK:      Low - Configuration loading and validation, no side effects beyond
 *            creating the configured local root directory
 */

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/worktime-tracker/system/internal/backup"
	"github.com/worktime-tracker/system/internal/netmonitor"
	"github.com/worktime-tracker/system/internal/notifyqueue"
)

// Config is the static, load-once-at-startup configuration for the whole
// tracker, generalizing the teacher's single hardcoded America/Montevideo
// deployment into a carried time.Location.
type Config struct {
	LocalRoot   string `json:"local_root"`
	NetworkRoot string `json:"network_root"`

	// Location is serialized as an IANA zone name; the zero value resolves
	// to time.Local at load time.
	LocationName string `json:"location_name"`
	Location     *time.Location `json:"-"`

	SyncEnabled bool `json:"sync_enabled"`

	NetMonitor netmonitor.Config `json:"net_monitor"`
	Backup     backup.Config     `json:"backup"`

	CacheSize int           `json:"cache_size"`
	CacheTTL  time.Duration `json:"cache_ttl"`

	NotificationRateLimits notifyqueue.RateLimit `json:"notification_rate_limits"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// NewDefaultConfig returns production-ready defaults, per spec section 6's
// environment-input list.
func NewDefaultConfig() *Config {
	return &Config{
		LocalRoot:    "./data/local",
		NetworkRoot:  "./data/network",
		LocationName: "",
		Location:     time.Local,
		SyncEnabled:  true,
		NetMonitor:   netmonitor.Config{}.WithDefaults(),
		Backup:       backup.Config{Enabled: true}.WithDefaults(),
		CacheSize:    1000,
		CacheTTL:     10 * time.Minute,
		NotificationRateLimits: notifyqueue.RateLimit{
			notifyqueue.KindScheduleEnd: time.Hour,
			notifyqueue.KindHourly:      time.Hour,
			notifyqueue.KindTempStop:    5 * time.Minute,
			notifyqueue.KindStartDay:    time.Hour,
			notifyqueue.KindResolution:  time.Minute,
		},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load reads configPath (if non-empty and present), falls back to defaults
// otherwise, applies environment overrides, resolves the time zone, and
// validates the result - mirroring the teacher's
// LoadDaemonConfig/LoadFromEnvironment/Validate pipeline.
func Load(configPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	cfg.applyEnvironment()

	loc, err := cfg.resolveLocation()
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	cfg.NetMonitor = cfg.NetMonitor.WithDefaults()
	cfg.Backup = cfg.Backup.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) resolveLocation() (*time.Location, error) {
	if c.LocationName == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.LocationName)
	if err != nil {
		return nil, fmt.Errorf("invalid location_name %q: %w", c.LocationName, err)
	}
	return loc, nil
}

// applyEnvironment overlays WORKTIME_TRACKER_-prefixed environment
// variables, matching the teacher's CLAUDE_MONITOR_-prefixed override shape.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("WORKTIME_TRACKER_LOCAL_ROOT"); v != "" {
		c.LocalRoot = v
	}
	if v := os.Getenv("WORKTIME_TRACKER_NETWORK_ROOT"); v != "" {
		c.NetworkRoot = v
	}
	if v := os.Getenv("WORKTIME_TRACKER_LOCATION"); v != "" {
		c.LocationName = v
	}
	if v := os.Getenv("WORKTIME_TRACKER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WORKTIME_TRACKER_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("WORKTIME_TRACKER_SYNC_ENABLED"); v != "" {
		c.SyncEnabled = v != "false"
	}
	if v := os.Getenv("WORKTIME_TRACKER_MONITOR_INTERVAL"); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			c.NetMonitor.MonitorInterval = dur
		}
	}
}

// Validate checks the configuration for internal consistency and creates
// the local root directory, per the teacher's Validate/SaveToFile pattern.
// The network root is not created.
func (c *Config) Validate() error {
	if c.LocalRoot == "" {
		return fmt.Errorf("local_root cannot be empty")
	}
	if c.NetworkRoot == "" {
		return fmt.Errorf("network_root cannot be empty")
	}
	if err := os.MkdirAll(c.LocalRoot, 0755); err != nil {
		return fmt.Errorf("failed to create local_root %s: %w", c.LocalRoot, err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level %s, must be one of: debug, info, warn, error", c.LogLevel)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format %s, must be one of: json, text", c.LogFormat)
	}

	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive, got %v", c.CacheTTL)
	}
	return nil
}

// SaveToFile persists the configuration as indented JSON, mirroring the
// teacher's DaemonConfig.SaveToFile.
func (c *Config) SaveToFile(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return os.WriteFile(configPath, data, 0644)
}
