package weather

import "time"

// Report is a snapshot prepared for display in a given unit.
type Report struct {
	Weather Snapshot `json:"weather"`
	Danger  Danger   `json:"danger"`
	Unit    Unit     `json:"unit"`
	Display Display  `json:"display"`
}

// Display carries rounded temperatures converted to the report unit.
type Display struct {
	Symbol       string        `json:"symbol"`
	Temperature  int           `json:"temp"`
	FeelsLike    int           `json:"feelsLike"`
	TempMin      int           `json:"tempMin"`
	TempMax      int           `json:"tempMax"`
	VisibilityKm float64       `json:"visibilityKm"`
	Daily        []DisplayDay  `json:"forecast"`
	Hourly       []DisplayHour `json:"hourly"`
}

type DisplayDay struct {
	Date time.Time `json:"date"`
	Min  int       `json:"min"`
	Max  int       `json:"max"`
}

type DisplayHour struct {
	Time time.Time `json:"time"`
	Temp int       `json:"temp"`
}

// BuildReport derives the danger assessment and display values for s.
func BuildReport(s Snapshot, u Unit) Report {
	c := s.Current
	d := Display{
		Symbol:       u.Symbol(),
		Temperature:  ConvertTemperature(c.Temperature, u),
		FeelsLike:    ConvertTemperature(c.FeelsLike, u),
		TempMin:      ConvertTemperature(c.TempMin, u),
		TempMax:      ConvertTemperature(c.TempMax, u),
		VisibilityKm: c.Visibility / 1000,
		Daily:        make([]DisplayDay, 0, len(s.Daily)),
		Hourly:       make([]DisplayHour, 0, len(s.Hourly)),
	}
	for _, day := range s.Daily {
		d.Daily = append(d.Daily, DisplayDay{
			Date: day.Date,
			Min:  ConvertTemperature(day.TempMin, u),
			Max:  ConvertTemperature(day.TempMax, u),
		})
	}
	for _, h := range s.Hourly {
		d.Hourly = append(d.Hourly, DisplayHour{
			Time: h.Time,
			Temp: ConvertTemperature(h.Temperature, u),
		})
	}

	return Report{
		Weather: s,
		Danger:  Assess(c),
		Unit:    u,
		Display: d,
	}
}
