package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinytelemetry/cloudguard/internal/model"

	"github.com/spf13/viper"
)

const (
	defaultSkin         = model.DefaultSkin
	defaultCompactWidth = model.DefaultCompactWidth
	defaultSplash       = 800 * time.Millisecond
)

// cliConfig holds only TUI-relevant configuration.
type cliConfig struct {
	Skin               string        `mapstructure:"skin"`
	CompactWidth       int           `mapstructure:"compact-width"`
	Mouse              bool          `mapstructure:"mouse"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	Splash             time.Duration `mapstructure:"splash"`
	ConfigDir          string        `mapstructure:"-"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "cloudguard")

	v := viper.New()
	v.SetEnvPrefix("CLOUDGUARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", defaultSkin)
	v.SetDefault("compact-width", defaultCompactWidth)
	v.SetDefault("mouse", true)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("splash", defaultSplash)

	if configPath != "" {
		v.SetConfigFile(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.CompactWidth < 0 {
		return cfg, fmt.Errorf("invalid compact-width: %d", cfg.CompactWidth)
	}
	cfg.ConfigDir = configDir

	return cfg, nil
}
