// Package cliconfig loads watsonctl settings from the environment and an
// optional .env file.
package cliconfig

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration loaded from environment variables.
type Config struct {
	Username           string        `mapstructure:"watson_username"`
	Password           string        `mapstructure:"watson_password"`
	ClassifierURL      string        `mapstructure:"watson_classifier_url"`
	PersonalityURL     string        `mapstructure:"watson_personality_url"`
	LogLevel           string        `mapstructure:"log_level"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPRetryCount     int           `mapstructure:"http_retry_count"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, falling back to a
// local .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("watson_username", "")
	v.SetDefault("watson_password", "")
	v.SetDefault("watson_classifier_url", "")
	v.SetDefault("watson_personality_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_timeout_seconds", 30)
	v.SetDefault("http_retry_count", 0)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Username == "" {
		return nil, errors.New("WATSON_USERNAME is required")
	}
	if cfg.Password == "" {
		return nil, errors.New("WATSON_PASSWORD is required")
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, errors.New("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.HTTPRetryCount < 0 {
		return nil, errors.New("invalid http_retry_count (cannot be negative)")
	}

	return &cfg, nil
}
