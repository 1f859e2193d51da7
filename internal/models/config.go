package models

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	StatePath      string        `mapstructure:"state_path"`

	UploadBucket string `mapstructure:"upload_bucket"`
	UploadRegion string `mapstructure:"upload_region"`

	TrendingLimit        int           `mapstructure:"trending_limit"`
	AutocompleteDebounce time.Duration `mapstructure:"autocomplete_debounce"`
	DraftDebounce        time.Duration `mapstructure:"draft_debounce"`
	CacheRefreshInterval time.Duration `mapstructure:"cache_refresh_interval"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("grubline")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("grubline")
	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("base_url", "https://api.grubline.dev")
	viper.SetDefault("request_timeout", "15s")
	viper.SetDefault("state_path", defaultStatePath())
	viper.SetDefault("trending_limit", 10)
	viper.SetDefault("autocomplete_debounce", "300ms")
	viper.SetDefault("draft_debounce", "800ms")
	viper.SetDefault("cache_refresh_interval", "0s")
	viper.SetDefault("cache_ttl", "30s")

	if err := viper.ReadInConfig(); err != nil {
		// Only a config file named explicitly on the command line is required to exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "grubline.db"
	}
	return filepath.Join(home, ".grubline", "state.db")
}
