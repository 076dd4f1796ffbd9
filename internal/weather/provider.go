package weather

import (
	"context"

	"github.com/i474232898/weather-dashboard/internal/recent"
)

// Forecaster abstracts a forecast source (e.g. Open-Meteo).
type Forecaster interface {
	Name() string
	Forecast(ctx context.Context, lat, lon float64) (Snapshot, error)
}

// Geocoder resolves free-text place names to candidates.
type Geocoder interface {
	Search(ctx context.Context, query string, count int) ([]SearchResult, error)
}

// PlaceNamer resolves coordinates to a readable place name.
type PlaceNamer interface {
	Place(ctx context.Context, lat, lon float64) (Place, error)
}

// Locator resolves a client address to an approximate position.
type Locator interface {
	Locate(ctx context.Context, ip string) (Position, error)
}

// RecentStore is the contract for the recent-search history.
type RecentStore interface {
	Add(ctx context.Context, s recent.Search) error
	List(ctx context.Context) ([]recent.Search, error)
	Update(ctx context.Context, id string, qw recent.QuickWeather) error
	Clear(ctx context.Context) error
}

// Observer receives service-level events, typically for metrics.
type Observer interface {
	ObserveFetch(source string, err error)
	ObserveCache(hit bool)
	ObserveDanger(level int)
}

type nopObserver struct{}

func (nopObserver) ObserveFetch(string, error) {}
func (nopObserver) ObserveCache(bool)          {}
func (nopObserver) ObserveDanger(int)          {}
