package cliconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaults(t *testing.T) {
	t.Setenv("WATSON_USERNAME", "user")
	t.Setenv("WATSON_PASSWORD", "pass")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "user", cfg.Username)
	require.Equal(t, "pass", cfg.Password)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Zero(t, cfg.HTTPRetryCount)
	require.Empty(t, cfg.ClassifierURL)
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("WATSON_USERNAME", "user")
	t.Setenv("WATSON_PASSWORD", "pass")
	t.Setenv("WATSON_CLASSIFIER_URL", "https://example.com/nlc")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "10")
	t.Setenv("HTTP_RETRY_COUNT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://example.com/nlc", cfg.ClassifierURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.Equal(t, 3, cfg.HTTPRetryCount)
}

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("WATSON_USERNAME", "")
	t.Setenv("WATSON_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("WATSON_USERNAME", "user")
	t.Setenv("WATSON_PASSWORD", "pass")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	_, err := Load()
	require.Error(t, err)
}
