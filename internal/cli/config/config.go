// Package config loads tool configuration from kql.yml
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the kql tool configuration
type Config struct {
	// Models extends the default query model set with custom names
	Models []string `mapstructure:"models"`
	// Lenient switches the parser to the looser compatibility grammar
	Lenient bool         `mapstructure:"lenient"`
	Data    DataConfig   `mapstructure:"data"`
	Output  OutputConfig `mapstructure:"output"`
}

// DataConfig configures where `kql run` finds fixture data
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// OutputConfig configures how commands render results
type OutputConfig struct {
	Format string `mapstructure:"format"` // text or json
	Color  string `mapstructure:"color"`  // auto, always or never
}

// Load loads the configuration from kql.yml or kql.yaml in the current
// directory, with KQL_-prefixed environment overrides. A missing config
// file yields the defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("lenient", false)
	v.SetDefault("data.dir", ".")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", "auto")

	v.SetConfigName("kql")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("KQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file - defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"json\", got: %s", cfg.Output.Format)
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be \"auto\", \"always\" or \"never\", got: %s", cfg.Output.Color)
	}

	for _, model := range cfg.Models {
		if strings.TrimSpace(model) == "" {
			return fmt.Errorf("models must not contain empty names")
		}
	}

	return nil
}
