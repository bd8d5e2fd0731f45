// Package config manages application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	NoColor bool `mapstructure:"no_color"`
	Debug   bool `mapstructure:"debug"`
}

// Options returns the immutable run options described by the config.
func (c *Config) Options() Options {
	return Options{
		NoColor: c.NoColor,
		Debug:   c.Debug,
	}
}

// Load loads configuration from files, environment variables and flags.
// It searches for config files in the following order:
// 1. /etc/nicenorm/nicenorm.{toml,yaml,yml,json}
// 2. $XDG_CONFIG_HOME/nicenorm/nicenorm.{toml,yaml,yml,json} (or ~/.config/nicenorm/)
//
// Environment variables override file settings using the prefix NICENORM_,
// for example NICENORM_NO_COLOR. A changed --no-color flag overrides both.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigName("nicenorm")
	v.AddConfigPath("/etc/nicenorm/")
	v.AddConfigPath(getXDGConfigPath())

	v.SetEnvPrefix("NICENORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("no_color", false)
	v.SetDefault("debug", false)

	if flags != nil {
		if flag := flags.Lookup(noColorFlag); flag != nil {
			if err := v.BindPFlag("no_color", flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", noColorFlag, err)
			}
		}
	}

	// A missing config file is fine, defaults and env vars still apply
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// getXDGConfigPath returns the XDG config directory for nicenorm.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "nicenorm")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/etc", "nicenorm")
	}

	return filepath.Join(homeDir, ".config", "nicenorm")
}
