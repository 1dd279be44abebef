package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // "text" (default) or "json"
}

// InitConfig initializes the configuration system.
// Settings only come from JWTSECRET_* environment variables, no config file is read.
func InitConfig() {
	viper.SetEnvPrefix("JWTSECRET")
	viper.AutomaticEnv()

	setDefaults()
}

// Load loads the configuration from viper
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadOrDefault loads the configuration and falls back to Default when it is
// invalid. Logging settings never prevent a secret from being generated.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		logrus.WithError(err).Warn("Invalid configuration, using defaults")
		return Default()
	}
	return cfg
}

// setDefaults sets default configuration values
func setDefaults() {
	defaults := Default()
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("log_format", defaults.LogFormat)
}

func validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", cfg.LogLevel, err)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format '%s', must be 'text' or 'json'", cfg.LogFormat)
	}

	return nil
}

// ConfigureLogging applies the log level and format to the standard logrus logger
func (cfg *Config) ConfigureLogging() error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)

	if strings.ToLower(cfg.LogFormat) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}
