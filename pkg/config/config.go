// Package config holds the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"sensoff/pkg/source"
	"sensoff/pkg/transect"
)

// Config holds the application configuration.
type Config struct {
	Offset OffsetConfig `yaml:"offset"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	RunLog RunLogConfig `yaml:"runlog"`
}

// OffsetConfig holds the mounted sensor geometry. Both values default to
// zero, meaning no correction.
type OffsetConfig struct {
	Inline  float64 `yaml:"inline"`
	Lateral float64 `yaml:"lateral"`
}

// InputConfig holds point source settings.
type InputConfig struct {
	Format    string `yaml:"format"` // "csv", "shapefile", "geojson", "nmea"
	XCol      int    `yaml:"xcol"`   // 1-based, csv only
	YCol      int    `yaml:"ycol"`   // 1-based, csv only
	Delimiter string `yaml:"delimiter"`
	HeadRows  int    `yaml:"headrows"` // -1 enables auto header detection
}

// OutputConfig holds result sink settings.
type OutputConfig struct {
	Delimiter string `yaml:"delimiter"`
	Edge      string `yaml:"edge"` // "nan" or "leg" edge-heading convention
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `yaml:"path"` // empty logs to stderr only
	Level string `yaml:"level"`
}

// RunLogConfig holds correction-run history settings.
type RunLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Offset: OffsetConfig{
			Inline:  0,
			Lateral: 0,
		},
		Input: InputConfig{
			Format:    "csv",
			XCol:      1,
			YCol:      2,
			Delimiter: ",",
			HeadRows:  source.AutoHeader,
		},
		Output: OutputConfig{
			Delimiter: ",",
			Edge:      "nan",
		},
		Log: LogConfig{
			Path:  "",
			Level: "INFO",
		},
		RunLog: RunLogConfig{
			Enabled: false,
			Path:    "./data/sensoff.db",
		},
	}
}

// EdgeMode maps the configured edge-heading convention onto the core enum.
func (c *Config) EdgeMode() (transect.EdgeMode, error) {
	switch c.Output.Edge {
	case "", "nan":
		return transect.EdgeNaN, nil
	case "leg":
		return transect.EdgeLeg, nil
	default:
		return 0, fmt.Errorf("invalid edge mode %q: must be 'nan' or 'leg'", c.Output.Edge)
	}
}

// InputDelimiter returns the input delimiter as a rune, defaulting to comma.
func (c *Config) InputDelimiter() rune {
	return delimiterRune(c.Input.Delimiter)
}

// OutputDelimiter returns the output delimiter as a rune, defaulting to comma.
func (c *Config) OutputDelimiter() rune {
	return delimiterRune(c.Output.Delimiter)
}

func delimiterRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ','
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if _, err := cfg.EdgeMode(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// If file does not exist, save defaults
	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
