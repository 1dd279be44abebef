package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	setDefaults()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("JWTSECRET_LOG_LEVEL", "debug")
	t.Setenv("JWTSECRET_LOG_FORMAT", "json")
	InitConfig()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		errorMsg string
	}{
		{
			name:     "unknown log level",
			key:      "log_level",
			value:    "verbose",
			errorMsg: "invalid log_level 'verbose'",
		},
		{
			name:     "unknown log format",
			key:      "log_format",
			value:    "xml",
			errorMsg: "invalid log_format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			setDefaults()
			viper.Set(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestLoadOrDefault_InvalidFallsBack(t *testing.T) {
	viper.Reset()
	t.Setenv("JWTSECRET_LOG_LEVEL", "verbose")
	t.Setenv("JWTSECRET_LOG_FORMAT", "json")
	InitConfig()

	cfg := LoadOrDefault()
	require.NotNil(t, cfg)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_Valid(t *testing.T) {
	viper.Reset()
	t.Setenv("JWTSECRET_LOG_LEVEL", "error")
	InitConfig()

	cfg := LoadOrDefault()
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestConfigureLogging(t *testing.T) {
	originalLevel := logrus.GetLevel()
	originalFormatter := logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetLevel(originalLevel)
		logrus.SetFormatter(originalFormatter)
	})

	cfg := &Config{LogLevel: "error", LogFormat: "json"}
	require.NoError(t, cfg.ConfigureLogging())
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	cfg = &Config{LogLevel: "info", LogFormat: "text"}
	require.NoError(t, cfg.ConfigureLogging())
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)

	cfg = &Config{LogLevel: "loud"}
	assert.Error(t, cfg.ConfigureLogging())
}
