package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const openMeteoGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingProvider implements weather.Geocoder with the Open-Meteo geocoding API.
type GeocodingProvider struct {
	base
	language string
}

func NewGeocodingProvider(client *http.Client, language string, opts ...Option) *GeocodingProvider {
	if language == "" {
		language = "en"
	}
	return &GeocodingProvider{
		base:     newBase("geocoding", openMeteoGeocodingURL, client, opts),
		language: language,
	}
}

// Search returns at most count candidates for query.
func (p *GeocodingProvider) Search(ctx context.Context, query string, count int) ([]weather.SearchResult, error) {
	values := url.Values{}
	values.Set("name", query)
	values.Set("count", strconv.Itoa(count))
	values.Set("language", p.language)
	values.Set("format", "json")

	resp, err := p.get(ctx, p.baseURL+"?"+values.Encode())
	if err != nil {
		return nil, fmt.Errorf("geocoding: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Admin1    string  `json:"admin1"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geocoding: %w: decode: %v", weather.ErrUpstream, err)
	}

	// No "results" key means no match.
	out := make([]weather.SearchResult, 0, len(payload.Results))
	for _, r := range payload.Results {
		out = append(out, weather.SearchResult{
			Name:    r.Name,
			Country: r.Country,
			Region:  r.Admin1,
			Lat:     r.Latitude,
			Lon:     r.Longitude,
		})
	}
	return out, nil
}
