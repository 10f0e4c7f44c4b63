package config

import "time"

// Config holds runtime settings for the LuxAuto CLI.
//
// Fields:
//   - DatabasePath: path of the local sqlite store file.
//   - LogLevel: debug, info, warn or error.
//   - SubmitDelay: artificial pause shown while a listing submission is
//     "processed"; purely cosmetic, set to 0 in tests.
type Config struct {
	DatabasePath string
	LogLevel     string
	SubmitDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "luxauto.db"
	c.LogLevel = "info"
	c.SubmitDelay = 2 * time.Second
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
