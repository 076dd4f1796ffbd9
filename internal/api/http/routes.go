package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/backdrop"
	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, picker *backdrop.Picker) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		unit, err := parseUnit(c)
		if err != nil {
			return err
		}
		q, err := parseCoordsQuery(c)
		if err != nil {
			return err
		}

		snapshot, err := service.WeatherByCoords(c.UserContext(), q.Lat, q.Lon)
		if err != nil {
			return err
		}
		return c.JSON(weather.BuildReport(snapshot, unit))
	})

	v1.Get("/weather/city", func(c *fiber.Ctx) error {
		unit, err := parseUnit(c)
		if err != nil {
			return err
		}
		q := cityQuery{Name: c.Query("name")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := service.WeatherByCity(c.UserContext(), q.Name)
		if err != nil {
			return err
		}
		return c.JSON(weather.BuildReport(snapshot, unit))
	})

	v1.Get("/search", func(c *fiber.Ctx) error {
		q := searchQuery{Q: c.Query("q")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		results, err := service.SearchCities(c.UserContext(), q.Q)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"results": results})
	})

	v1.Get("/recent", func(c *fiber.Ctx) error {
		list, err := service.RecentSearches(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"recent": list})
	})

	v1.Delete("/recent", func(c *fiber.Ctx) error {
		if err := service.ClearRecent(c.UserContext()); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Get("/recent/:id/weather", func(c *fiber.Ctx) error {
		unit, err := parseUnit(c)
		if err != nil {
			return err
		}

		snapshot, err := service.WeatherByRecent(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(weather.BuildReport(snapshot, unit))
	})

	v1.Get("/locate", func(c *fiber.Ctx) error {
		ip := common.ClientIP(c.Get(fiber.HeaderXForwardedFor), c.IP())
		pos, err := service.Locate(c.UserContext(), ip)
		if err != nil {
			return err
		}
		return c.JSON(pos)
	})

	v1.Get("/backdrop", func(c *fiber.Ctx) error {
		var q backdropQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		now := time.Now()
		at := time.Date(now.Year(), now.Month(), now.Day(), q.Hour, now.Minute(), 0, 0, now.Location())
		period := backdrop.PeriodAt(at)
		if q.Lat != nil && q.Lon != nil {
			at = now
			period = backdrop.SunPeriod(*q.Lat, *q.Lon, now)
		}

		cond := weather.Condition(q.Condition)
		return c.JSON(fiber.Map{
			"url":    picker.Pick(cond, q.Temp, period, at),
			"period": period,
			"theme":  backdrop.Theme(cond, q.Temp),
		})
	})
}

// ErrorHandler renders errors as JSON with a user-facing message and a
// retry hint.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := weather.UserMessage(err)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else if status, ok := statusFor(err); ok {
		code = status
	}

	return c.Status(code).JSON(fiber.Map{
		"error":     true,
		"message":   message,
		"retryable": fe == nil && weather.Retryable(err),
	})
}

func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, weather.ErrInvalidCoordinates):
		return fiber.StatusBadRequest, true
	case errors.Is(err, weather.ErrCityNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, weather.ErrRateLimited):
		return fiber.StatusTooManyRequests, true
	case errors.Is(err, weather.ErrLocationDenied):
		return fiber.StatusForbidden, true
	case errors.Is(err, weather.ErrLocationTimeout):
		return fiber.StatusGatewayTimeout, true
	case errors.Is(err, weather.ErrLocationUnavailable):
		return fiber.StatusServiceUnavailable, true
	case errors.Is(err, weather.ErrNetwork), errors.Is(err, weather.ErrUpstream):
		return fiber.StatusBadGateway, true
	}
	return 0, false
}

// coordsQuery holds the coordinates of a weather lookup.
type coordsQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordsQuery(c *fiber.Ctx) (coordsQuery, error) {
	var q coordsQuery

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, fiber.NewError(fiber.StatusBadRequest, "lat and lon query parameters are required")
	}

	var err error
	if q.Lat, err = strconv.ParseFloat(latStr, 64); err != nil {
		return q, weather.ErrInvalidCoordinates
	}
	if q.Lon, err = strconv.ParseFloat(lonStr, 64); err != nil {
		return q, weather.ErrInvalidCoordinates
	}
	if err := validate.Struct(q); err != nil {
		return q, weather.ErrInvalidCoordinates
	}
	return q, nil
}

type cityQuery struct {
	Name string `validate:"required,min=2,max=100"`
}

type searchQuery struct {
	Q string `validate:"max=100"`
}

// backdropQuery selects a background image. With lat and lon the period
// follows the sun there and hour is ignored.
type backdropQuery struct {
	Condition string   `validate:"required"`
	Temp      float64  `validate:"gte=-100,lte=70"`
	Hour      int      `validate:"gte=0,lte=23"`
	Lat       *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon       *float64 `validate:"omitempty,gte=-180,lte=180"`
}

func (b *backdropQuery) bind(c *fiber.Ctx) error {
	b.Condition = c.Query("condition")

	var err error
	if v := c.Query("temp"); v != "" {
		if b.Temp, err = strconv.ParseFloat(v, 64); err != nil {
			return errors.New("temp must be a number")
		}
	}

	b.Hour = time.Now().Hour()
	if v := c.Query("hour"); v != "" {
		if b.Hour, err = strconv.Atoi(v); err != nil {
			return errors.New("hour must be an integer")
		}
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if (latStr == "") != (lonStr == "") {
		return errors.New("lat and lon must be given together")
	}
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return errors.New("lat must be a number")
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return errors.New("lon must be a number")
		}
		b.Lat, b.Lon = &lat, &lon
	}
	return nil
}

func parseUnit(c *fiber.Ctx) (weather.Unit, error) {
	u, err := weather.ParseUnit(c.Query("unit"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return u, nil
}
