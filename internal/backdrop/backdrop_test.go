package backdrop

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func TestPeriodAt(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 1, 1, h, 30, 0, 0, time.UTC) }

	assert.Equal(t, Night, PeriodAt(at(0)))
	assert.Equal(t, Night, PeriodAt(at(5)))
	assert.Equal(t, Day, PeriodAt(at(6)))
	assert.Equal(t, Day, PeriodAt(at(19)))
	assert.Equal(t, Night, PeriodAt(at(20)))
}

func TestTheme(t *testing.T) {
	tests := []struct {
		cond weather.Condition
		temp float64
		want weather.Condition
	}{
		{weather.ConditionClear, 4.9, weather.ConditionSnow},
		{weather.ConditionClear, 5, weather.ConditionClear},
		{weather.ConditionClouds, -3, weather.ConditionSnow},
		{weather.ConditionRain, 2, weather.ConditionRain},
		{weather.ConditionRain, -0.5, weather.ConditionSnow},
		{weather.ConditionThunderstorm, -5, weather.ConditionThunderstorm},
		{weather.ConditionFog, -5, weather.ConditionFog},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Theme(tt.cond, tt.temp), "%s at %.1f", tt.cond, tt.temp)
	}
}

func TestCandidates(t *testing.T) {
	noon := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	midnight := noon.Add(12 * time.Hour)

	assert.Equal(t, images[weather.ConditionRain][Day], Candidates(weather.ConditionRain, 10, PeriodAt(noon)))
	assert.Equal(t, images[weather.ConditionSnow][Night], Candidates(weather.ConditionClear, 0, PeriodAt(midnight)))
	assert.Equal(t, fallback, Candidates(weather.Condition("Tornado"), 20, Day))
}

func TestPicker_Pick(t *testing.T) {
	p := NewPicker(42)
	at := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	pool := Candidates(weather.ConditionThunderstorm, 25, Day)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		got := p.Pick(weather.ConditionThunderstorm, 25, Day, at)

		base, stamp, ok := strings.Cut(got, "&t=")
		assert.True(t, ok, got)
		assert.Equal(t, "1717250400000", stamp)
		assert.Contains(t, pool, base)
		seen[base] = true
	}
	assert.Len(t, seen, len(pool), "every candidate should eventually be picked")
}

func TestPicker_SameSeedSameSequence(t *testing.T) {
	at := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	a, b := NewPicker(7), NewPicker(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(weather.ConditionClear, 20, Night, at), b.Pick(weather.ConditionClear, 20, Night, at))
	}
}

func TestSunPeriod(t *testing.T) {
	// Paris in June: sun up roughly 03:45-19:55 UTC.
	assert.Equal(t, Day, SunPeriod(48.85, 2.35, time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Night, SunPeriod(48.85, 2.35, time.Date(2024, 6, 21, 23, 0, 0, 0, time.UTC)))

	// Los Angeles: local afternoon is after midnight UTC.
	la := time.FixedZone("PDT", -7*3600)
	assert.Equal(t, Day, SunPeriod(34.05, -118.24, time.Date(2024, 6, 21, 18, 0, 0, 0, la)))
	assert.Equal(t, Night, SunPeriod(34.05, -118.24, time.Date(2024, 6, 21, 2, 0, 0, 0, la)))

	// Tokyo: local morning is the previous UTC day.
	jst := time.FixedZone("JST", 9*3600)
	assert.Equal(t, Day, SunPeriod(35.68, 139.69, time.Date(2024, 12, 1, 8, 0, 0, 0, jst)))
	assert.Equal(t, Night, SunPeriod(35.68, 139.69, time.Date(2024, 12, 1, 22, 0, 0, 0, jst)))
}
