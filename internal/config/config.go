package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ServeConfig struct {
	Port            int  `mapstructure:"port"`
	AllowAllOrigins bool `mapstructure:"allow_all_origins"`
}

type Config struct {
	BaseURL string      `mapstructure:"base_url"`
	HTTP    HTTPConfig  `mapstructure:"http"`
	Cache   CacheConfig `mapstructure:"cache"`
	Serve   ServeConfig `mapstructure:"serve"`
}

// cacheBase returns the base cache directory for docnav.
// Checks XDG_CACHE_HOME, then ~/.cache, then /tmp/docnav as fallback.
func cacheBase() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "docnav")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "docnav")
	}
	return filepath.Join(os.TempDir(), "docnav")
}

// SnapshotDir returns the directory holding compressed dataset snapshots.
func SnapshotDir() string {
	return filepath.Join(cacheBase(), "snapshots")
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "docnav"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "docnav"))
	}

	viper.SetDefault("base_url", "http://localhost:8080")
	viper.SetDefault("http.timeout_seconds", 30)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("serve.port", 8080)
	viper.SetDefault("serve.allow_all_origins", false)

	viper.SetEnvPrefix("DOCNAV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
