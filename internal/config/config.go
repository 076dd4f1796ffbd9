package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Recent-search store drivers.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type AppConfig struct {
	Port        string
	HTTPTimeout time.Duration

	// Upstream endpoints. Empty means the provider default.
	ForecastBaseURL   string
	GeocodingBaseURL  string
	GeocodingLanguage string
	IPLocateBaseURL   string
	IPLocateEnabled   bool

	// GoogleGeocoderAPIKey enables reverse geocoding of coordinate lookups.
	GoogleGeocoderAPIKey string

	ForecastCacheTTL time.Duration

	RecentStore  string // sqlite or memory
	RecentDBPath string

	// RefreshInterval controls how often recent searches are refreshed (0 disables).
	RefreshInterval time.Duration

	LogLevel slog.Level
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	cfg := &AppConfig{}

	var err error
	cfg.Port = getenvDefault("PORT", "8080")
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.ForecastBaseURL = os.Getenv("FORECAST_BASE_URL")
	cfg.GeocodingBaseURL = os.Getenv("GEOCODING_BASE_URL")
	cfg.GeocodingLanguage = getenvDefault("GEOCODING_LANGUAGE", "en")
	cfg.IPLocateBaseURL = os.Getenv("IPLOCATE_BASE_URL")
	cfg.IPLocateEnabled = getenvBool("IPLOCATE_ENABLED", true)
	cfg.GoogleGeocoderAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")

	// Matches the ten minute maximum age browsers use for cached positions.
	if cfg.ForecastCacheTTL, err = getenvDuration("FORECAST_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}

	cfg.RecentStore = strings.ToLower(getenvDefault("RECENT_STORE", StoreSQLite))
	if cfg.RecentStore != StoreSQLite && cfg.RecentStore != StoreMemory {
		return nil, fmt.Errorf("invalid RECENT_STORE %q: want %s or %s", cfg.RecentStore, StoreSQLite, StoreMemory)
	}
	cfg.RecentDBPath = getenvDefault("RECENT_DB_PATH", "weather-dashboard.db")

	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", 30*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenvDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
