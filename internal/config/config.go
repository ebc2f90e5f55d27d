package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - DatabasePath: filesystem path of the local store (SQLite file).
//   - LoginDelay: artificial latency applied to login attempts. Zero
//     disables it.
type Config struct {
	DatabasePath string
	LoginDelay   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "brewmart.db"
	c.LoginDelay = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
