package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithViper(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadWithViper(viper.New())
		require.NoError(t, err)

		assert.Equal(t, 60, cfg.TimeoutSeconds)
		assert.True(t, cfg.Color)
		assert.Nil(t, cfg.ToolArgs("cppcheck"))
	})

	t.Run("yaml config", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(`
timeout_seconds: 120
color: false
tools:
  cppcheck:
    args: ["--std=c++17", "--enable=style"]
`)))

		cfg, err := LoadWithViper(v)
		require.NoError(t, err)

		assert.Equal(t, 120, cfg.TimeoutSeconds)
		assert.False(t, cfg.Color)
		assert.Equal(t, []string{"--std=c++17", "--enable=style"}, cfg.ToolArgs("cppcheck"))
		assert.Nil(t, cfg.ToolArgs("oclint"))
	})

	t.Run("nil config is safe to query", func(t *testing.T) {
		var cfg *Config
		assert.Nil(t, cfg.ToolArgs("cppcheck"))
	})
}
