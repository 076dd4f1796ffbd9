// Package backdrop picks a background photograph matching the weather.
package backdrop

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sj14/astral/pkg/astral"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const pexels = "https://images.pexels.com/photos/"

func photo(path string) string {
	return pexels + path + "?auto=compress&cs=tinysrgb&w=1920"
}

// Period is the part of the day an image is meant for.
type Period string

const (
	Day   Period = "day"
	Night Period = "night"
)

// PeriodAt reports Day from 06:00 to 19:59 and Night otherwise.
func PeriodAt(t time.Time) Period {
	if h := t.Hour(); h >= 6 && h < 20 {
		return Day
	}
	return Night
}

// SunPeriod reports Day between sunrise and sunset at lat/lon. Where the sun
// does not rise or set on that date it falls back to PeriodAt.
func SunPeriod(lat, lon float64, at time.Time) Period {
	obs := astral.Observer{Latitude: lat, Longitude: lon}
	utc := at.UTC()

	// Local days straddle UTC midnight, so check the neighbouring dates too.
	for _, offset := range []int{-1, 0, 1} {
		date := utc.AddDate(0, 0, offset)
		rise, err := astral.Sunrise(obs, date)
		if err != nil {
			return PeriodAt(at)
		}
		set, err := astral.Sunset(obs, date)
		if err != nil {
			return PeriodAt(at)
		}
		if set.Before(rise) {
			set = set.AddDate(0, 0, 1)
		}
		if !utc.Before(rise) && utc.Before(set) {
			return Day
		}
	}
	return Night
}

var images = map[weather.Condition]map[Period][]string{
	weather.ConditionClear: {
		Day: {
			photo("281260/pexels-photo-281260.jpeg"),
			photo("912364/pexels-photo-912364.jpeg"),
			photo("1287145/pexels-photo-1287145.jpeg"),
		},
		Night: {
			photo("355465/pexels-photo-355465.jpeg"),
			photo("417173/pexels-photo-417173.jpeg"),
		},
	},
	weather.ConditionClouds: {
		Day: {
			photo("158163/clouds-cloudporn-weather-lookup-158163.jpeg"),
			photo("209831/pexels-photo-209831.jpeg"),
		},
		Night: {
			photo("417173/pexels-photo-417173.jpeg"),
			photo("355465/pexels-photo-355465.jpeg"),
		},
	},
	weather.ConditionRain: {
		Day: {
			photo("459451/pexels-photo-459451.jpeg"),
			photo("1463530/pexels-photo-1463530.jpeg"),
		},
		Night: {
			photo("110874/pexels-photo-110874.jpeg"),
			photo("417173/pexels-photo-417173.jpeg"),
		},
	},
	weather.ConditionThunderstorm: {
		Day: {
			photo("1162251/pexels-photo-1162251.jpeg"),
			photo("534297/pexels-photo-534297.jpeg"),
		},
		Night: {
			photo("1446076/pexels-photo-1446076.jpeg"),
			photo("534283/pexels-photo-534283.jpeg"),
		},
	},
	weather.ConditionSnow: {
		Day: {
			photo("235621/pexels-photo-235621.jpeg"),
			photo("1198802/pexels-photo-1198802.jpeg"),
		},
		Night: {
			photo("688660/pexels-photo-688660.jpeg"),
			photo("1009136/pexels-photo-1009136.jpeg"),
		},
	},
	weather.ConditionFog: {
		Day:   {photo("167699/pexels-photo-167699.jpeg")},
		Night: {photo("1172207/pexels-photo-1172207.jpeg")},
	},
	weather.ConditionDrizzle: {
		Day:   {photo("1463530/pexels-photo-1463530.jpeg")},
		Night: {photo("1271619/pexels-photo-1271619.jpeg")},
	},
}

var fallback = []string{
	photo("281260/pexels-photo-281260.jpeg"),
	photo("158163/clouds-cloudporn-weather-lookup-158163.jpeg"),
	photo("325185/pexels-photo-325185.jpeg"),
}

// Theme returns the condition whose imagery suits c at tempC. Cold clear or
// cloudy skies and freezing rain look better with snow pictures.
func Theme(c weather.Condition, tempC float64) weather.Condition {
	switch {
	case c == weather.ConditionClear && tempC < 5,
		c == weather.ConditionClouds && tempC < 5,
		c == weather.ConditionRain && tempC < 0:
		return weather.ConditionSnow
	}
	return c
}

// Candidates lists the images Pick chooses from.
func Candidates(c weather.Condition, tempC float64, p Period) []string {
	if pool := images[Theme(c, tempC)][p]; len(pool) > 0 {
		return pool
	}
	return fallback
}

// Picker chooses a random image. It is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPicker creates a Picker seeded with seed.
func NewPicker(seed uint64) *Picker {
	return &Picker{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns an image URL for period with a cache-busting t parameter
// taken from at.
func (p *Picker) Pick(c weather.Condition, tempC float64, period Period, at time.Time) string {
	pool := Candidates(c, tempC, period)

	p.mu.Lock()
	img := pool[p.rnd.IntN(len(pool))]
	p.mu.Unlock()

	sep := "?"
	if strings.Contains(img, "?") {
		sep = "&"
	}
	return img + sep + "t=" + strconv.FormatInt(at.UnixMilli(), 10)
}
