// Package config loads engine settings from mirror.yaml and MIRROR_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the engine configuration.
type Config struct {
	Cache CacheConfig `mapstructure:"cache"`
	Log   LogConfig   `mapstructure:"log"`
	Clone CloneConfig `mapstructure:"clone"`
}

// CacheConfig sizes the member cache.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// LogConfig selects the process-wide logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// CloneConfig selects the protection profile of the default cloner.
type CloneConfig struct {
	Profile string `mapstructure:"profile"`
}

// EnvPrefix prefixes the environment overrides, e.g. MIRROR_CACHE_SIZE.
const EnvPrefix = "MIRROR"

// Load reads the configuration from path, or from mirror.yaml in the
// working directory when path is empty. A missing mirror.yaml is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("cache.size", 512)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("clone.profile", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mirror")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive, got: %d", cfg.Cache.Size)
	}

	return nil
}
