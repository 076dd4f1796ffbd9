package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/recent"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

func TestCurrentCmd_FlagValidation(t *testing.T) {
	tests := [][]string{
		{"current"},
		{"current", "--city", "Paris", "--lat", "1", "--lon", "2"},
		{"current", "--lat", "1"},
		{"current", "--city", "Paris", "--unit", "kelvin"},
	}

	for _, args := range tests {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		assert.Error(t, root.Execute(), "%v", args)
	}
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"search"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestPrintReport(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	snap := weather.Snapshot{
		Location: weather.Location{Name: "Oslo", Country: "Norway", Lat: 59.9139, Lon: 10.7522},
		Current: weather.Current{
			Temperature: -4,
			FeelsLike:   -9,
			Humidity:    80,
			WindSpeed:   25,
			Visibility:  8000,
			Sky:         weather.Describe(73),
		},
		Daily: []weather.DailyForecast{
			{Date: day, TempMin: -8, TempMax: -2, PrecipProbability: 0.9, Sky: weather.Describe(73)},
		},
	}

	var buf bytes.Buffer
	printReport(&buf, weather.BuildReport(snap, weather.Celsius))
	out := buf.String()

	assert.Contains(t, out, "Oslo, Norway (59.9139, 10.7522)")
	assert.Contains(t, out, "-4°C, feels like -9°C, moderate snow")
	assert.Contains(t, out, "visibility 8.0 km")
	assert.Contains(t, out, "danger level 55 (Moderate)")
	assert.Contains(t, out, "Sat 01 Jun")
	assert.Contains(t, out, "90%")
}

func TestPrintResultsAndRecent(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, nil)
	assert.Equal(t, "no matches\n", buf.String())

	buf.Reset()
	printResults(&buf, []weather.SearchResult{{Name: "Springfield", Region: "Illinois", Country: "United States", Lat: 39.80172, Lon: -89.64371}})
	assert.Contains(t, buf.String(), "Springfield")
	assert.Contains(t, buf.String(), "-89.6437")

	buf.Reset()
	printRecent(&buf, nil)
	assert.Equal(t, "no recent searches\n", buf.String())

	buf.Reset()
	printRecent(&buf, []recent.Search{{
		ID:           "59.9139,10.7522",
		Name:         "Oslo",
		Country:      "Norway",
		LastSearched: time.Now(),
		QuickWeather: &recent.QuickWeather{Temperature: -4.2, Description: "light snow"},
	}})
	require.Contains(t, buf.String(), "59.9139,10.7522")
	assert.Contains(t, buf.String(), "-4°C light snow")
}
