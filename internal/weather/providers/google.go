package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// geocoder keeps its API key in a package variable.
var googleKeyMu sync.Mutex

// GoogleNamer names coordinates with the Google reverse geocoding API.
type GoogleNamer struct {
	apiKey  string
	reverse func(geocoder.Location) ([]geocoder.Address, error)
}

func NewGoogleNamer(apiKey string) *GoogleNamer {
	return &GoogleNamer{
		apiKey:  apiKey,
		reverse: geocoder.GeocodingReverse,
	}
}

// Place returns the locality of the first reverse-geocoding match.
func (n *GoogleNamer) Place(ctx context.Context, lat, lon float64) (weather.Place, error) {
	if n.apiKey == "" {
		return weather.Place{}, fmt.Errorf("google geocoder api key is not configured")
	}

	type result struct {
		addrs []geocoder.Address
		err   error
	}
	done := make(chan result, 1)

	// The library call takes no context; run it aside so ctx still bounds us.
	go func() {
		googleKeyMu.Lock()
		defer googleKeyMu.Unlock()
		geocoder.ApiKey = n.apiKey
		addrs, err := n.reverse(geocoder.Location{Latitude: lat, Longitude: lon})
		done <- result{addrs, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		return weather.Place{}, ctx.Err()
	case r = <-done:
	}

	if r.err != nil {
		return weather.Place{}, fmt.Errorf("google: %w: %v", weather.ErrUpstream, r.err)
	}

	for _, a := range r.addrs {
		name := a.City
		if name == "" {
			name = a.County
		}
		if name == "" {
			continue
		}
		return weather.Place{Name: name, Country: a.Country, Region: a.State}, nil
	}
	return weather.Place{}, fmt.Errorf("google: no locality for %.4f,%.4f", lat, lon)
}
