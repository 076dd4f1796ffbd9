package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	openMeteoForecastURL = "https://api.open-meteo.com/v1/forecast"

	hourlyEntries = 24
	forecastDays  = 7

	// Open-Meteo reports local times without an offset when timezone=auto.
	openMeteoTimeLayout = "2006-01-02T15:04"
)

// OpenMeteoProvider implements weather.Forecaster for Open-Meteo.
type OpenMeteoProvider struct {
	base
}

func NewOpenMeteoProvider(client *http.Client, opts ...Option) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		base: newBase("openmeteo", openMeteoForecastURL, client, opts),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// openMeteoForecast mirrors the subset of the forecast response we request.
// Series values are pointers because the API emits null for missing samples.
type openMeteoForecast struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Timezone         string  `json:"timezone"`
	UTCOffsetSeconds int     `json:"utc_offset_seconds"`
	Current          struct {
		Time          string   `json:"time"`
		Temperature   *float64 `json:"temperature_2m"`
		Humidity      *float64 `json:"relative_humidity_2m"`
		Apparent      *float64 `json:"apparent_temperature"`
		WeatherCode   *int     `json:"weather_code"`
		PressureMSL   *float64 `json:"pressure_msl"`
		WindSpeed     *float64 `json:"wind_speed_10m"`
		WindDirection *float64 `json:"wind_direction_10m"`
	} `json:"current"`
	Hourly struct {
		Time          []string   `json:"time"`
		Temperature   []*float64 `json:"temperature_2m"`
		Humidity      []*float64 `json:"relative_humidity_2m"`
		WindSpeed     []*float64 `json:"wind_speed_10m"`
		WeatherCode   []*int     `json:"weather_code"`
		Precipitation []*float64 `json:"precipitation_probability"`
		Visibility    []*float64 `json:"visibility"`
		UVIndex       []*float64 `json:"uv_index"`
	} `json:"hourly"`
	Daily struct {
		Time          []string   `json:"time"`
		WeatherCode   []*int     `json:"weather_code"`
		TempMax       []*float64 `json:"temperature_2m_max"`
		TempMin       []*float64 `json:"temperature_2m_min"`
		Precipitation []*float64 `json:"precipitation_probability_max"`
		UVIndexMax    []*float64 `json:"uv_index_max"`
	} `json:"daily"`
}

// Forecast fetches current, hourly and daily weather for lat/lon.
func (p *OpenMeteoProvider) Forecast(ctx context.Context, lat, lon float64) (weather.Snapshot, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,pressure_msl,wind_speed_10m,wind_direction_10m")
	values.Set("hourly", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code,precipitation_probability,visibility,uv_index")
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max,uv_index_max")
	values.Set("timezone", "auto")
	values.Set("forecast_days", strconv.Itoa(forecastDays))

	resp, err := p.get(ctx, p.baseURL+"?"+values.Encode())
	if err != nil {
		if errors.Is(err, errBadRequest) {
			return weather.Snapshot{}, fmt.Errorf("openmeteo: %w", weather.ErrInvalidCoordinates)
		}
		return weather.Snapshot{}, fmt.Errorf("openmeteo: %w", err)
	}
	defer resp.Body.Close()

	var payload openMeteoForecast
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("openmeteo: %w: decode: %v", weather.ErrUpstream, err)
	}

	return normalizeForecast(payload, time.Now().UTC())
}

func normalizeForecast(f openMeteoForecast, fetchedAt time.Time) (weather.Snapshot, error) {
	if f.Current.Time == "" || len(f.Daily.Time) == 0 {
		return weather.Snapshot{}, fmt.Errorf("openmeteo: %w: incomplete forecast", weather.ErrUpstream)
	}

	loc := time.FixedZone(f.Timezone, f.UTCOffsetSeconds)
	now, err := time.ParseInLocation(openMeteoTimeLayout, f.Current.Time, loc)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("openmeteo: %w: current time: %v", weather.ErrUpstream, err)
	}

	name, country := placeFromTimezone(f.Timezone)

	hourly := make([]weather.HourlyForecast, 0, len(f.Hourly.Time))
	currentIdx, currentRaw := -1, -1
	for i, raw := range f.Hourly.Time {
		ts, err := time.ParseInLocation(openMeteoTimeLayout, raw, loc)
		if err != nil {
			continue
		}
		if currentIdx < 0 && sameLocalHour(ts, now) {
			currentIdx, currentRaw = len(hourly), i
		}
		hourly = append(hourly, weather.HourlyForecast{
			Time:              ts,
			Temperature:       at(f.Hourly.Temperature, i),
			Humidity:          at(f.Hourly.Humidity, i),
			WindSpeed:         at(f.Hourly.WindSpeed, i),
			PrecipProbability: at(f.Hourly.Precipitation, i) / 100,
			Sky:               weather.Describe(codeAt(f.Hourly.WeatherCode, i)),
		})
	}

	daily := make([]weather.DailyForecast, 0, len(f.Daily.Time))
	for i, raw := range f.Daily.Time {
		d, err := time.ParseInLocation(time.DateOnly, raw, loc)
		if err != nil {
			continue
		}
		daily = append(daily, weather.DailyForecast{
			Date:              d,
			TempMin:           at(f.Daily.TempMin, i),
			TempMax:           at(f.Daily.TempMax, i),
			TempDay:           at(f.Daily.TempMax, i),
			PrecipProbability: at(f.Daily.Precipitation, i) / 100,
			UVIndexMax:        at(f.Daily.UVIndexMax, i),
			Sky:               weather.Describe(codeAt(f.Daily.WeatherCode, i)),
		})
	}
	weather.AggregateHourly(daily, hourly)

	current := weather.Current{
		Temperature:   deref(f.Current.Temperature),
		FeelsLike:     deref(f.Current.Apparent),
		Humidity:      deref(f.Current.Humidity),
		Pressure:      deref(f.Current.PressureMSL),
		WindSpeed:     deref(f.Current.WindSpeed),
		WindDirection: deref(f.Current.WindDirection),
		Sky:           weather.Describe(derefCode(f.Current.WeatherCode)),
	}
	if f.Current.Apparent == nil {
		current.FeelsLike = current.Temperature
	}
	if len(daily) > 0 {
		current.TempMin = daily[0].TempMin
		current.TempMax = daily[0].TempMax
	}

	start := max(currentIdx, 0)
	current.Visibility = at(f.Hourly.Visibility, currentRaw)
	current.UVIndex = at(f.Hourly.UVIndex, currentRaw)
	end := min(start+hourlyEntries, len(hourly))

	return weather.Snapshot{
		Location: weather.Location{
			Name:     name,
			Country:  country,
			Lat:      f.Latitude,
			Lon:      f.Longitude,
			Timezone: f.Timezone,
		},
		Current:   current,
		Daily:     daily,
		Hourly:    hourly[start:end],
		FetchedAt: fetchedAt,
	}, nil
}

// placeFromTimezone derives a display name from an IANA zone, e.g.
// "America/New_York" -> ("New York", "America").
func placeFromTimezone(tz string) (name, country string) {
	parts := strings.Split(tz, "/")
	if tz == "" || len(parts) < 2 {
		return "Unknown location", "Unknown"
	}
	return strings.ReplaceAll(parts[len(parts)-1], "_", " "), parts[0]
}

func sameLocalHour(a, b time.Time) bool {
	const layout = "2006-01-02T15"
	return a.Format(layout) == b.Format(layout)
}

func at(series []*float64, i int) float64 {
	if i < 0 || i >= len(series) || series[i] == nil {
		return 0
	}
	return *series[i]
}

func codeAt(series []*int, i int) int {
	if i < 0 || i >= len(series) {
		return 0
	}
	return derefCode(series[i])
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefCode(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
