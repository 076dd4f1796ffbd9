package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "HTTP_TIMEOUT", "FORECAST_BASE_URL", "GEOCODING_BASE_URL", "GEOCODING_LANGUAGE",
	"IPLOCATE_BASE_URL", "IPLOCATE_ENABLED", "GOOGLE_GEOCODER_API_KEY", "FORECAST_CACHE_TTL",
	"RECENT_STORE", "RECENT_DB_PATH", "REFRESH_INTERVAL", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.ForecastBaseURL)
	assert.Equal(t, "en", cfg.GeocodingLanguage)
	assert.True(t, cfg.IPLocateEnabled)
	assert.Empty(t, cfg.GoogleGeocoderAPIKey)
	assert.Equal(t, 10*time.Minute, cfg.ForecastCacheTTL)
	assert.Equal(t, StoreSQLite, cfg.RecentStore)
	assert.Equal(t, "weather-dashboard.db", cfg.RecentDBPath)
	assert.Equal(t, 30*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("GEOCODING_LANGUAGE", "fr")
	t.Setenv("IPLOCATE_ENABLED", "false")
	t.Setenv("FORECAST_CACHE_TTL", "0")
	t.Setenv("RECENT_STORE", "Memory")
	t.Setenv("REFRESH_INTERVAL", "0s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "fr", cfg.GeocodingLanguage)
	assert.False(t, cfg.IPLocateEnabled)
	assert.Zero(t, cfg.ForecastCacheTTL)
	assert.Equal(t, StoreMemory, cfg.RecentStore)
	assert.Zero(t, cfg.RefreshInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"HTTP_TIMEOUT":       "soon",
		"FORECAST_CACHE_TTL": "10",
		"RECENT_STORE":       "redis",
		"REFRESH_INTERVAL":   "hourly",
		"LOG_LEVEL":          "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetenvBool_IgnoresGarbage(t *testing.T) {
	t.Setenv("IPLOCATE_ENABLED", "maybe")
	assert.True(t, getenvBool("IPLOCATE_ENABLED", true))
}
