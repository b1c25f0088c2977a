// Package config holds runtime settings for the account manager CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - StorageFile: path of the CSV file backing the account store.
type Config struct {
	StorageFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageFile = "storage/data.csv"
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
