package weather

import "time"

// AggregateHourly fills each day's humidity and wind speed with the mean of
// the hourly samples that fall on that calendar day. Days without samples are
// left untouched. The daily slice is modified in place.
func AggregateHourly(daily []DailyForecast, hourly []HourlyForecast) {
	if len(daily) == 0 || len(hourly) == 0 {
		return
	}

	type sums struct {
		humidity float64
		wind     float64
		n        int
	}

	byDay := make(map[string]*sums, len(daily))
	for _, h := range hourly {
		k := dayKey(h.Time)
		s, ok := byDay[k]
		if !ok {
			s = &sums{}
			byDay[k] = s
		}
		s.humidity += h.Humidity
		s.wind += h.WindSpeed
		s.n++
	}

	for i := range daily {
		s, ok := byDay[dayKey(daily[i].Date)]
		if !ok || s.n == 0 {
			continue
		}
		n := float64(s.n)
		daily[i].Humidity = s.humidity / n
		daily[i].WindSpeed = s.wind / n
	}
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
