package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/quantmind-br/buildmanifest/internal/utils"
)

// EnvPrefix is the prefix of environment overrides (BUILDMANIFEST_*)
const EnvPrefix = "BUILDMANIFEST"

// Load loads configuration from an optional file, the environment, and
// defaults. An explicit cfgFile must exist; the default location is
// optional.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(utils.ExpandPath(cfgFile))
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Input defaults
	v.SetDefault("input.cwd", DefaultInputCwd)
	v.SetDefault("input.groups", DefaultGroups)
	v.SetDefault("input.entry_manifest", DefaultEntryManifest)

	// Output defaults
	v.SetDefault("output.cwd", DefaultOutputCwd)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
