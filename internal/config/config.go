// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory     string `mapstructure:"directory" yaml:"directory"`
		SnapshotFile  string `mapstructure:"snapshot_file" yaml:"snapshot_file"`
		BackupEnabled bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
		BackupKeep    int    `mapstructure:"backup_keep" yaml:"backup_keep"`
	} `mapstructure:"data" yaml:"data"`

	Export struct {
		Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	} `mapstructure:"export" yaml:"export"`

	Reports struct {
		Currency      string `mapstructure:"currency" yaml:"currency"`
		ExpiryBuckets []int  `mapstructure:"expiry_buckets" yaml:"expiry_buckets"`
	} `mapstructure:"reports" yaml:"reports"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then RENTFOLIO_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.rentfolio")
	v.AddConfigPath(".rentfolio")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RENTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data")
	v.SetDefault("data.snapshot_file", "rentfolio.yaml")
	v.SetDefault("data.backup_enabled", true)
	v.SetDefault("data.backup_keep", 10)

	v.SetDefault("export.delimiter", ",")
	v.SetDefault("export.date_format", "2006-01-02")

	v.SetDefault("reports.currency", "USD")
	v.SetDefault("reports.expiry_buckets", []int{30, 60, 90})
}

// validateConfig rejects settings that would produce unusable output.
func validateConfig(c *Config) error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}

	if len(c.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got %q", c.Export.Delimiter)
	}

	if c.Data.BackupKeep < 1 {
		return fmt.Errorf("data.backup_keep must be at least 1, got %d", c.Data.BackupKeep)
	}

	prev := 0
	for _, days := range c.Reports.ExpiryBuckets {
		if days <= prev {
			return fmt.Errorf("reports.expiry_buckets must be strictly increasing positive day counts")
		}
		prev = days
	}

	return nil
}
