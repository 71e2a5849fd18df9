package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Input defaults
	DefaultInputCwd      = ""
	DefaultGroups        = "all"
	DefaultEntryManifest = "<command-line --entry>"

	// Output defaults
	DefaultOutputCwd = "."

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".buildmanifest"
	}
	return filepath.Join(home, ".buildmanifest")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Cwd:           DefaultInputCwd,
			Groups:        DefaultGroups,
			EntryManifest: DefaultEntryManifest,
		},
		Output: OutputConfig{
			Cwd: DefaultOutputCwd,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
