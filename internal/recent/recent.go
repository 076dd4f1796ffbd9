// Package recent keeps the short history of locations a user looked at.
package recent

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Limit is the maximum number of entries kept.
const Limit = 5

// QuickWeather is the summary shown next to a recent entry.
type QuickWeather struct {
	Temperature float64 `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Search is one recently viewed location.
type Search struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Country      string        `json:"country"`
	LastSearched time.Time     `json:"lastSearched"`
	QuickWeather *QuickWeather `json:"quickWeather,omitempty"`
}

// ID derives the entry id for a coordinate pair. Coordinates are rounded to
// four decimals (about 11 m) so that repeated lookups of the same place share
// an id.
func ID(lat, lon float64) string {
	return strconv.FormatFloat(round4(lat), 'f', 4, 64) + "," + strconv.FormatFloat(round4(lon), 'f', 4, 64)
}

// ParseID is the inverse of ID.
func ParseID(id string) (lat, lon float64, err error) {
	latStr, lonStr, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("malformed recent id %q", id)
	}
	if lat, err = strconv.ParseFloat(latStr, 64); err != nil {
		return 0, 0, fmt.Errorf("malformed recent id %q: %w", id, err)
	}
	if lon, err = strconv.ParseFloat(lonStr, 64); err != nil {
		return 0, 0, fmt.Errorf("malformed recent id %q: %w", id, err)
	}
	return lat, lon, nil
}

func round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		// avoid "-0.0000"
		return 0
	}
	return r
}

// Push puts s at the front of list, removes older entries with the same id
// and truncates the result to limit. list is not modified.
func Push(list []Search, s Search, limit int) []Search {
	if limit <= 0 {
		limit = Limit
	}
	out := make([]Search, 0, min(len(list)+1, limit))
	out = append(out, s)
	seen := map[string]bool{s.ID: true}
	for _, e := range list {
		if len(out) == limit {
			break
		}
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
