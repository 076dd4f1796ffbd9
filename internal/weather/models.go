package weather

import (
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionFog          Condition = "Fog"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionThunderstorm Condition = "Thunderstorm"
)

// Sky is the display form of a raw weather code.
type Sky struct {
	Code        int       `json:"code"`
	Condition   Condition `json:"main"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// Location identifies the place a snapshot was fetched for.
type Location struct {
	Name     string  `json:"name"`
	Country  string  `json:"country"`
	Region   string  `json:"region,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone,omitempty"`
}

// Current holds the conditions at fetch time. Temperatures are in Celsius,
// wind speed in km/h, visibility in metres.
type Current struct {
	Temperature   float64 `json:"temp"`
	FeelsLike     float64 `json:"feelsLike"`
	TempMin       float64 `json:"tempMin"`
	TempMax       float64 `json:"tempMax"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection float64 `json:"windDeg"`
	Visibility    float64 `json:"visibility"`
	UVIndex       float64 `json:"uvIndex"`
	Sky
}

// DailyForecast is one day of the forecast. PrecipProbability is in [0,1].
type DailyForecast struct {
	Date              time.Time `json:"date"`
	TempMin           float64   `json:"tempMin"`
	TempMax           float64   `json:"tempMax"`
	TempDay           float64   `json:"tempDay"`
	Humidity          float64   `json:"humidity"`
	WindSpeed         float64   `json:"windSpeed"`
	PrecipProbability float64   `json:"pop"`
	UVIndexMax        float64   `json:"uvIndexMax"`
	Sky               Sky       `json:"weather"`
}

// HourlyForecast is one hour of the forecast.
type HourlyForecast struct {
	Time              time.Time `json:"time"`
	Temperature       float64   `json:"temp"`
	Humidity          float64   `json:"humidity"`
	WindSpeed         float64   `json:"windSpeed"`
	PrecipProbability float64   `json:"pop"`
	Sky               Sky       `json:"weather"`
}

// Snapshot is the normalized view of one forecast fetch. It is never mutated
// after construction; each query produces a new one.
type Snapshot struct {
	Location  Location         `json:"location"`
	Current   Current          `json:"current"`
	Daily     []DailyForecast  `json:"forecast"`
	Hourly    []HourlyForecast `json:"hourly"`
	FetchedAt time.Time        `json:"fetchedAt"` // always UTC
}

// SearchResult is a geocoding candidate.
type SearchResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Region  string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Position is a coarse location resolved for a client.
type Position struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
}

// Place is the human-readable name of a coordinate pair.
type Place struct {
	Name    string
	Country string
	Region  string
}
