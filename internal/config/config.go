// Package config manages application configuration from files and environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration. Everything here is optional:
// a render only needs what the CLI passes explicitly, and the defaults keep
// refcat working with no config file at all.
type Config struct {
	Output struct {
		Dir   string `mapstructure:"dir"`
		Color bool   `mapstructure:"color"`
	} `mapstructure:"output"`
	Style struct {
		File string `mapstructure:"file"`
	} `mapstructure:"style"`
}

// Load reads the configuration from ~/.refcat/config.yaml and environment
// variables. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())

	// Defaults
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.color", true)

	// Environment variable overrides
	v.SetEnvPrefix("REFCAT")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".refcat"
	}
	return filepath.Join(home, ".refcat")
}
