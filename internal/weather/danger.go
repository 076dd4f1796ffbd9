package weather

// Rating buckets a danger level for display.
type Rating string

const (
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingModerate  Rating = "Moderate"
	RatingDangerous Rating = "Dangerous"
)

// Danger is the derived hazard assessment of the current conditions.
type Danger struct {
	Level  int    `json:"level"`
	Rating Rating `json:"rating"`
}

const maxDanger = 100

// DangerLevel scores how hazardous the current conditions are, from 0 to 100.
// Temperature, wind, condition and humidity each contribute independently.
func DangerLevel(c Current) int {
	danger := 0

	switch t := c.Temperature; {
	case t < -10 || t > 35:
		danger += 30
	case t < 0 || t > 30:
		danger += 15
	}

	switch w := c.WindSpeed; {
	case w > 50:
		danger += 40
	case w > 30:
		danger += 20
	case w > 20:
		danger += 10
	}

	switch c.Condition {
	case ConditionThunderstorm:
		danger += 50
	case ConditionSnow:
		danger += 30
	case ConditionRain:
		danger += 20
	case ConditionFog:
		danger += 15
	}

	if c.Humidity > 90 || c.Humidity < 20 {
		danger += 10
	}

	return min(max(danger, 0), maxDanger)
}

// RateDanger maps a level to its rating.
func RateDanger(level int) Rating {
	switch {
	case level >= 70:
		return RatingDangerous
	case level >= 40:
		return RatingModerate
	case level >= 20:
		return RatingFair
	default:
		return RatingGood
	}
}

// Assess computes the level and rating together.
func Assess(c Current) Danger {
	level := DangerLevel(c)
	return Danger{Level: level, Rating: RateDanger(level)}
}
