package weather

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNetwork is returned when an upstream could not be reached.
	ErrNetwork = errors.New("network error")
	// ErrUpstream is returned when an upstream answered with an unusable response.
	ErrUpstream = errors.New("upstream error")
	// ErrInvalidCoordinates is returned for out-of-range or rejected coordinates.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrRateLimited is returned when an upstream throttles us.
	ErrRateLimited = errors.New("rate limited")
	// ErrCityNotFound is returned when a city name yields no geocoding match.
	ErrCityNotFound = errors.New("city not found")

	ErrLocationDenied      = errors.New("geolocation denied")
	ErrLocationTimeout     = errors.New("geolocation timed out")
	ErrLocationUnavailable = errors.New("geolocation unavailable")
)

var messages = []struct {
	err error
	msg string
}{
	{ErrInvalidCoordinates, "Invalid coordinates."},
	{ErrRateLimited, "Request limit exceeded. Please try again later."},
	{ErrNetwork, "Connection error. Check your internet connection."},
	{ErrCityNotFound, "City not found."},
	{ErrLocationDenied, "Geolocation permission denied."},
	{ErrLocationTimeout, "Geolocation timed out."},
	{ErrLocationUnavailable, "Position unavailable."},
}

// UserMessage returns a message suitable for showing to an end user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "Unable to retrieve weather data. Please try again."
}

// Retryable reports whether retrying the same request could succeed.
func Retryable(err error) bool {
	return err != nil &&
		!errors.Is(err, ErrInvalidCoordinates) &&
		!errors.Is(err, ErrCityNotFound)
}

var validate = validator.New()

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

// Validate rejects NaN and out-of-range values with ErrInvalidCoordinates.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return ErrInvalidCoordinates
	}
	if err := validate.Struct(c); err != nil {
		return errors.Join(ErrInvalidCoordinates, err)
	}
	return nil
}
