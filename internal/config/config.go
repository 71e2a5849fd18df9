package config

import (
	"fmt"
)

// Config represents the application configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// InputConfig holds the starting values of the order-sensitive input flags
type InputConfig struct {
	Cwd           string `mapstructure:"cwd" yaml:"cwd"`
	// Groups is "all" or a comma-separated list; "" selects ungrouped entries
	Groups        string `mapstructure:"groups" yaml:"groups"`
	EntryManifest string `mapstructure:"entry_manifest" yaml:"entry_manifest"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Cwd string `mapstructure:"cwd" yaml:"cwd"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, falling back to defaults for
// missing values. An empty input.groups is kept: it selects ungrouped
// entries only, as --groups "" does.
func (c *Config) Validate() error {
	if c.Input.EntryManifest == "" {
		c.Input.EntryManifest = DefaultEntryManifest
	}
	if c.Output.Cwd == "" {
		c.Output.Cwd = DefaultOutputCwd
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid logging.format: %q", c.Logging.Format)
	}
	return nil
}
