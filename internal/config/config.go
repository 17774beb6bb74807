// Package config manages hook configuration using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the hook configuration.
type Config struct {
	// TimeoutSeconds bounds a single wrapped-tool invocation.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// Color toggles styled terminal output.
	Color bool `mapstructure:"color"`
	// Tools holds per-tool settings keyed by the wrapped binary's name.
	Tools map[string]ToolConfig `mapstructure:"tools"`
}

// ToolConfig represents settings for one wrapped tool.
type ToolConfig struct {
	// Args are extra default arguments, injected unless the user already
	// passed the same flag on the command line.
	Args []string `mapstructure:"args"`
}

// Load loads configuration from files and environment variables.
// It searches for config files in the following order:
// 1. /etc/cpp-hooks/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/cpp-hooks/config.{toml,yaml,yml} (or ~/.config/cpp-hooks/)
// 3. ./config.{toml,yaml,yml}
//
// Environment variables override file settings using the prefix CPP_HOOKS_
// For example: CPP_HOOKS_TIMEOUT_SECONDS
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")

	v.AddConfigPath("/etc/cpp-hooks/")
	v.AddConfigPath(getXDGConfigPath())
	v.AddConfigPath(".")

	v.SetEnvPrefix("CPP_HOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Try to read config file (it's OK if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ToolArgs returns the configured extra arguments for a tool, if any.
func (c *Config) ToolArgs(tool string) []string {
	if c == nil || c.Tools == nil {
		return nil
	}
	return c.Tools[tool].Args
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timeout_seconds", 60)
	v.SetDefault("color", true)
}

// getXDGConfigPath returns the XDG config directory for cpp-hooks.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "cpp-hooks")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}

	return filepath.Join(homeDir, ".config", "cpp-hooks")
}
