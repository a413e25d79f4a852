// Package config provides configuration for the eql command-line tool.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI configuration. Precedence: environment > config file
// > defaults.
type Config struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, console
	Absent    string // false, error: missing chain segment policy
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Absent:    "false",
	}
}

// Load reads configuration with viper. configPath may be empty, in which
// case only environment variables (EQL_ prefix) and defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("absent", def.Absent)

	v.SetEnvPrefix("EQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		Absent:    v.GetString("absent"),
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console, got %q", cfg.LogFormat)
	}
	switch cfg.Absent {
	case "false", "error":
	default:
		return fmt.Errorf("absent must be false or error, got %q", cfg.Absent)
	}
	return nil
}
