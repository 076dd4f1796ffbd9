package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/metrics"
	"github.com/i474232898/weather-dashboard/internal/recent"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

// kvStore is a recent.KV that owns resources.
type kvStore interface {
	recent.KV
	io.Closer
}

// app bundles what every command needs.
type app struct {
	cfg     *config.AppConfig
	service *weather.Service
	metrics *metrics.Metrics
	store   kvStore
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	var kv kvStore
	switch cfg.RecentStore {
	case config.StoreMemory:
		kv = store.NewMemoryStore()
	default:
		kv, err = store.NewSQLite(cfg.RecentDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open recent store: %w", err)
		}
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	forecaster := providers.NewOpenMeteoProvider(httpClient, baseURL(cfg.ForecastBaseURL)...)
	geocoder := providers.NewGeocodingProvider(httpClient, cfg.GeocodingLanguage, baseURL(cfg.GeocodingBaseURL)...)

	m := metrics.New()
	opts := []weather.Option{
		weather.WithCacheTTL(cfg.ForecastCacheTTL),
		weather.WithObserver(m),
	}
	if cfg.IPLocateEnabled {
		opts = append(opts, weather.WithLocator(providers.NewIPLocator(httpClient, baseURL(cfg.IPLocateBaseURL)...)))
	}
	if cfg.GoogleGeocoderAPIKey != "" {
		opts = append(opts, weather.WithPlaceNamer(providers.NewGoogleNamer(cfg.GoogleGeocoderAPIKey)))
	}

	service := weather.NewService(forecaster, geocoder, recent.NewBook(kv), opts...)

	return &app{cfg: cfg, service: service, metrics: m, store: kv}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("closing recent store", "err", err)
	}
}

func baseURL(u string) []providers.Option {
	if u == "" {
		return nil
	}
	return []providers.Option{providers.WithBaseURL(u)}
}
