package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const ipAPIURL = "http://ip-api.com/json"

// IPLocator implements weather.Locator with ip-api.com.
type IPLocator struct {
	base
}

func NewIPLocator(client *http.Client, opts ...Option) *IPLocator {
	return &IPLocator{
		base: newBase("ip-api", ipAPIURL, client, opts),
	}
}

// Locate returns the approximate position of ip. An empty ip asks the
// service to locate the caller.
func (l *IPLocator) Locate(ctx context.Context, ip string) (weather.Position, error) {
	u := l.baseURL
	if ip != "" {
		u += "/" + url.PathEscape(ip)
	}
	u += "?fields=status,message,lat,lon,city,country"

	resp, err := l.get(ctx, u)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return weather.Position{}, fmt.Errorf("ip-api: %w", weather.ErrLocationTimeout)
		}
		return weather.Position{}, fmt.Errorf("ip-api: %w: %w", weather.ErrLocationUnavailable, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		City    string  `json:"city"`
		Country string  `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Position{}, fmt.Errorf("ip-api: %w: decode: %v", weather.ErrLocationUnavailable, err)
	}

	if payload.Status != "success" {
		msg := strings.ToLower(payload.Message)
		if common.HasAny(msg, "private range", "reserved range") {
			return weather.Position{}, fmt.Errorf("ip-api: %w: %s is not publicly routable", weather.ErrLocationUnavailable, ip)
		}
		return weather.Position{}, fmt.Errorf("ip-api: %w: %s", weather.ErrLocationUnavailable, payload.Message)
	}

	return weather.Position{
		Lat:     payload.Lat,
		Lon:     payload.Lon,
		City:    payload.City,
		Country: payload.Country,
	}, nil
}
