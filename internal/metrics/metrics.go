// Package metrics exposes Prometheus instrumentation for the weather service.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Metrics implements weather.Observer on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	upstream *prometheus.CounterVec
	cache    *prometheus.CounterVec
	danger   prometheus.Histogram
}

var _ weather.Observer = (*Metrics)(nil)

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Upstream API calls by source and outcome.",
		}, []string{"source", "outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_cache_lookups_total",
			Help: "Forecast cache lookups by result.",
		}, []string{"result"}),
		danger: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "weather_danger_level",
			Help:    "Danger level of served snapshots.",
			Buckets: []float64{0, 20, 40, 70, 100},
		}),
	}
	m.registry.MustRegister(
		m.upstream, m.cache, m.danger,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveFetch(source string, err error) {
	m.upstream.WithLabelValues(source, outcome(err)).Inc()
}

func (m *Metrics) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cache.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDanger(level int) {
	m.danger.Observe(float64(level))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, weather.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, weather.ErrInvalidCoordinates):
		return "invalid"
	case errors.Is(err, weather.ErrNetwork):
		return "network"
	default:
		return "error"
	}
}
