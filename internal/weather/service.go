package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	gocache "github.com/patrickmn/go-cache"

	"github.com/i474232898/weather-dashboard/internal/recent"
)

const (
	// MinQueryLength is the shortest query forwarded to the geocoder.
	MinQueryLength = 2
	// MaxSearchResults caps the candidates returned by SearchCities.
	MaxSearchResults = 5
)

// Service orchestrates forecast and geocoding providers, the forecast cache
// and the recent-search history.
type Service struct {
	forecaster Forecaster
	geocoder   Geocoder
	namer      PlaceNamer
	locator    Locator
	recents    RecentStore
	observer   Observer
	cache      *gocache.Cache
	now        func() time.Time
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithPlaceNamer names coordinate lookups with n instead of the forecast timezone.
func WithPlaceNamer(n PlaceNamer) Option {
	return func(s *Service) { s.namer = n }
}

// WithLocator enables Locate.
func WithLocator(l Locator) Option {
	return func(s *Service) { s.locator = l }
}

// WithObserver reports fetches, cache lookups and danger levels to o.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// WithCacheTTL caches snapshots per coordinate for ttl. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl <= 0 {
			s.cache = nil
			return
		}
		s.cache = gocache.New(ttl, 2*ttl)
	}
}

// WithClock overrides the time source used for recent-search timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Service.
func NewService(forecaster Forecaster, geocoder Geocoder, recents RecentStore, opts ...Option) *Service {
	s := &Service{
		forecaster: forecaster,
		geocoder:   geocoder,
		recents:    recents,
		observer:   nopObserver{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchCities returns up to MaxSearchResults candidates for query. Queries
// shorter than MinQueryLength return an empty list without calling the geocoder.
func (s *Service) SearchCities(ctx context.Context, query string) ([]SearchResult, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return []SearchResult{}, nil
	}

	results, err := s.geocoder.Search(ctx, q, MaxSearchResults)
	s.observer.ObserveFetch("geocoding", err)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}
	if results == nil {
		results = []SearchResult{}
	}
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results, nil
}

// WeatherByCoords returns the weather at lat/lon and records it as a recent search.
func (s *Service) WeatherByCoords(ctx context.Context, lat, lon float64) (Snapshot, error) {
	return s.weatherAt(ctx, lat, lon, nil)
}

// WeatherByCity resolves name with the geocoder and returns the weather at
// the first candidate.
func (s *Service) WeatherByCity(ctx context.Context, name string) (Snapshot, error) {
	results, err := s.SearchCities(ctx, name)
	if err != nil {
		return Snapshot{}, err
	}
	if len(results) == 0 {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrCityNotFound, strings.TrimSpace(name))
	}

	top := results[0]
	return s.weatherAt(ctx, top.Lat, top.Lon, &Place{
		Name:    top.Name,
		Country: top.Country,
		Region:  top.Region,
	})
}

// WeatherByRecent re-opens a recent search by id, keeping its stored name.
func (s *Service) WeatherByRecent(ctx context.Context, id string) (Snapshot, error) {
	lat, lon, err := recent.ParseID(id)
	if err != nil {
		return Snapshot{}, errors.Join(ErrInvalidCoordinates, err)
	}

	var place *Place
	list, err := s.recents.List(ctx)
	if err != nil {
		slog.Warn("could not read recent searches", "err", err)
	}
	for _, e := range list {
		if e.ID == id {
			place = &Place{Name: e.Name, Country: e.Country}
			break
		}
	}

	return s.weatherAt(ctx, lat, lon, place)
}

// RecentSearches returns the history, most recent first.
func (s *Service) RecentSearches(ctx context.Context) ([]recent.Search, error) {
	return s.recents.List(ctx)
}

// ClearRecent forgets the history.
func (s *Service) ClearRecent(ctx context.Context) error {
	return s.recents.Clear(ctx)
}

// RefreshRecent updates the quick-weather summary of every recent search
// without reordering the list. It returns how many entries were refreshed.
func (s *Service) RefreshRecent(ctx context.Context) (int, error) {
	list, err := s.recents.List(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, e := range list {
		if ctx.Err() != nil {
			return refreshed, ctx.Err()
		}

		lat, lon, err := recent.ParseID(e.ID)
		if err != nil {
			slog.Warn("skipping malformed recent search", "id", e.ID, "err", err)
			continue
		}

		snap, err := s.fetch(ctx, lat, lon)
		if err != nil {
			slog.Warn("recent refresh failed", "id", e.ID, "err", err)
			continue
		}

		if err := s.recents.Update(ctx, e.ID, quickWeather(snap)); err != nil {
			// The entry may have been cleared concurrently.
			slog.Warn("recent update failed", "id", e.ID, "err", err)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

// Locate resolves the approximate position of a client address.
func (s *Service) Locate(ctx context.Context, ip string) (Position, error) {
	if s.locator == nil {
		return Position{}, ErrLocationDenied
	}
	pos, err := s.locator.Locate(ctx, ip)
	s.observer.ObserveFetch("geolocation", err)
	return pos, err
}

func (s *Service) weatherAt(ctx context.Context, lat, lon float64, place *Place) (Snapshot, error) {
	snap, err := s.fetch(ctx, lat, lon)
	if err != nil {
		return Snapshot{}, err
	}

	if place != nil {
		snap.Location.Name = place.Name
		snap.Location.Country = place.Country
		snap.Location.Region = place.Region
	}

	s.observer.ObserveDanger(DangerLevel(snap.Current))

	entry := recent.Search{
		ID:           recent.ID(lat, lon),
		Name:         snap.Location.Name,
		Country:      snap.Location.Country,
		LastSearched: s.now().UTC(),
		QuickWeather: ptr(quickWeather(snap)),
	}
	if err := s.recents.Add(ctx, entry); err != nil {
		slog.Warn("could not record recent search", "id", entry.ID, "err", err)
	}

	return snap, nil
}

// fetch returns a (possibly cached) snapshot named by the configured namer.
func (s *Service) fetch(ctx context.Context, lat, lon float64) (Snapshot, error) {
	if err := (Coordinates{Lat: lat, Lon: lon}).Validate(); err != nil {
		return Snapshot{}, err
	}

	key := recent.ID(lat, lon)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			s.observer.ObserveCache(true)
			return v.(Snapshot), nil
		}
		s.observer.ObserveCache(false)
	}

	snap, err := s.forecaster.Forecast(ctx, lat, lon)
	s.observer.ObserveFetch(s.forecaster.Name(), err)
	if err != nil {
		return Snapshot{}, err
	}

	if s.namer != nil {
		p, err := s.namer.Place(ctx, lat, lon)
		if err != nil {
			slog.Debug("reverse geocoding failed; keeping timezone name", "key", key, "err", err)
		} else {
			snap.Location.Name = p.Name
			snap.Location.Country = p.Country
			snap.Location.Region = p.Region
		}
	}

	if s.cache != nil {
		s.cache.SetDefault(key, snap)
	}
	return snap, nil
}

func quickWeather(s Snapshot) recent.QuickWeather {
	return recent.QuickWeather{
		Temperature: s.Current.Temperature,
		Description: s.Current.Description,
		Icon:        s.Current.Icon,
	}
}

func ptr[T any](v T) *T { return &v }
