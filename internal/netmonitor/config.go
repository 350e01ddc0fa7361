/**
 * CONTEXT:   Network liveness monitor configuration (spec section 6 environment inputs)
 * INPUT:     Static configuration loaded once at startup, no hot reload
 * OUTPUT:    Defaults matching spec section 4.2
 * CHANGE:    Initial implementation.
 * RISK:      Low - Plain configuration struct
 */

package netmonitor

import "time"

// Config is the static, load-once-at-startup configuration for the
// liveness monitor.
type Config struct {
	NetworkRoot         string
	MonitorInterval     time.Duration // default 1h
	DebounceInterval     time.Duration // default 10s
	JitterThreshold      int           // default 3
	NetworkCheckRetries  int           // default 3
}

// WithDefaults fills zero-valued fields with spec section 4.2's defaults.
func (c Config) WithDefaults() Config {
	if c.MonitorInterval == 0 {
		c.MonitorInterval = time.Hour
	}
	if c.DebounceInterval == 0 {
		c.DebounceInterval = 10 * time.Second
	}
	if c.JitterThreshold == 0 {
		c.JitterThreshold = 3
	}
	if c.NetworkCheckRetries == 0 {
		c.NetworkCheckRetries = 3
	}
	return c
}

// initialBackoff is the fixed startup detection schedule from spec
// section 4.2: an independent backoff schedule whose first success
// forces an immediate status update without debounce.
var initialBackoff = []time.Duration{
	5 * time.Second, 10 * time.Second, 20 * time.Second, 30 * time.Second, 60 * time.Second,
}
