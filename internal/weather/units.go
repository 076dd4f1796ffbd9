package weather

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a temperature display unit. Data is always stored in Celsius.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

const (
	celsiusToFahrenheitScale  = 9.0 / 5.0
	celsiusToFahrenheitOffset = 32.0
)

// ParseUnit accepts "celsius"/"c" and "fahrenheit"/"f", case-insensitively.
// An empty string means Celsius.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// Symbol returns the unit suffix shown next to a temperature.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Toggle switches between Celsius and Fahrenheit.
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// CelsiusToFahrenheit converts a temperature from Celsius to Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*celsiusToFahrenheitScale + celsiusToFahrenheitOffset
}

// FahrenheitToCelsius converts a temperature from Fahrenheit to Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - celsiusToFahrenheitOffset) / celsiusToFahrenheitScale
}

// ConvertTemperature converts a Celsius value to u and rounds it for display.
// Halves round up, so -2.5 becomes -2.
func ConvertTemperature(c float64, u Unit) int {
	if u == Fahrenheit {
		c = CelsiusToFahrenheit(c)
	}
	return int(math.Floor(c + 0.5))
}
