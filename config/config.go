package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds runtime configuration for window tracking and overlay
// behavior. Fields may be loaded from a JSON file and overridden by
// command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Target window tracking
	WindowTitle            string `json:"window_title"`
	PollIntervalMs         int    `json:"poll_interval_ms"`
	MaxConsecutiveFailures int    `json:"max_consecutive_failures"`
	TrackingLossTimeoutMs  int    `json:"tracking_loss_timeout_ms"`

	// Marker filtering
	MinConfidence    float64  `json:"min_confidence"`
	HiddenStrategies []string `json:"hidden_strategies"`

	// App behavior
	ControlBar bool `json:"control_bar"`
	SimWindow  bool `json:"sim_window"`
	DemoFeed   bool `json:"demo_feed"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                  false,
		WindowTitle:            "",
		PollIntervalMs:         100,
		MaxConsecutiveFailures: 5,
		TrackingLossTimeoutMs:  2000,
		MinConfidence:          0.5,
		HiddenStrategies:       nil,
		ControlBar:             true,
		SimWindow:              false,
		DemoFeed:               false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.PollIntervalMs < 50 {
		c.PollIntervalMs = 50
	}
	if c.PollIntervalMs > 1000 {
		c.PollIntervalMs = 1000
	}
	if c.MaxConsecutiveFailures < 1 {
		c.MaxConsecutiveFailures = 5
	}
	if c.TrackingLossTimeoutMs < c.PollIntervalMs {
		c.TrackingLossTimeoutMs = 2000
	}
	if c.MinConfidence < 0 {
		c.MinConfidence = 0
	}
	if c.MinConfidence > 1 {
		c.MinConfidence = 1
	}
	return nil
}

// PollInterval returns the window poll cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// TrackingLossTimeout returns the stale-success cutoff as a duration.
func (c *Config) TrackingLossTimeout() time.Duration {
	return time.Duration(c.TrackingLossTimeoutMs) * time.Millisecond
}

// Load reads configuration from a JSON file. A missing file yields
// DefaultConfig with no error; a malformed one yields defaults plus the
// decode error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
