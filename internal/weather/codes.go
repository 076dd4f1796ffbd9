package weather

// WMO weather interpretation codes as returned by Open-Meteo.
var skies = map[int]Sky{
	0:  {Condition: ConditionClear, Description: "clear sky", Icon: "01d"},
	1:  {Condition: ConditionClouds, Description: "mainly clear", Icon: "02d"},
	2:  {Condition: ConditionClouds, Description: "partly cloudy", Icon: "03d"},
	3:  {Condition: ConditionClouds, Description: "overcast", Icon: "04d"},
	45: {Condition: ConditionFog, Description: "fog", Icon: "50d"},
	48: {Condition: ConditionFog, Description: "depositing rime fog", Icon: "50d"},
	51: {Condition: ConditionDrizzle, Description: "light drizzle", Icon: "09d"},
	53: {Condition: ConditionDrizzle, Description: "moderate drizzle", Icon: "09d"},
	55: {Condition: ConditionDrizzle, Description: "dense drizzle", Icon: "09d"},
	56: {Condition: ConditionDrizzle, Description: "light freezing drizzle", Icon: "13d"},
	57: {Condition: ConditionDrizzle, Description: "dense freezing drizzle", Icon: "13d"},
	61: {Condition: ConditionRain, Description: "light rain", Icon: "10d"},
	63: {Condition: ConditionRain, Description: "moderate rain", Icon: "10d"},
	65: {Condition: ConditionRain, Description: "heavy rain", Icon: "10d"},
	66: {Condition: ConditionRain, Description: "light freezing rain", Icon: "13d"},
	67: {Condition: ConditionRain, Description: "heavy freezing rain", Icon: "13d"},
	71: {Condition: ConditionSnow, Description: "light snow", Icon: "13d"},
	73: {Condition: ConditionSnow, Description: "moderate snow", Icon: "13d"},
	75: {Condition: ConditionSnow, Description: "heavy snow", Icon: "13d"},
	77: {Condition: ConditionSnow, Description: "snow grains", Icon: "13d"},
	80: {Condition: ConditionRain, Description: "light rain showers", Icon: "09d"},
	81: {Condition: ConditionRain, Description: "moderate rain showers", Icon: "09d"},
	82: {Condition: ConditionRain, Description: "violent rain showers", Icon: "09d"},
	85: {Condition: ConditionSnow, Description: "light snow showers", Icon: "13d"},
	86: {Condition: ConditionSnow, Description: "heavy snow showers", Icon: "13d"},
	95: {Condition: ConditionThunderstorm, Description: "thunderstorm", Icon: "11d"},
	96: {Condition: ConditionThunderstorm, Description: "thunderstorm with light hail", Icon: "11d"},
	99: {Condition: ConditionThunderstorm, Description: "thunderstorm with heavy hail", Icon: "11d"},
}

// Describe maps a WMO weather code to its condition, description and icon.
// Unknown codes are reported as clear sky, keeping the caller's code.
func Describe(code int) Sky {
	sky, ok := skies[code]
	if !ok {
		sky = skies[0]
	}
	sky.Code = code
	return sky
}
