package httpapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kelvins/geocoder"

	"github.com/rajasthanwx/weather-monitor/internal/dashboard"
	"github.com/rajasthanwx/weather-monitor/internal/domain"
	"github.com/rajasthanwx/weather-monitor/internal/store"
	"github.com/rajasthanwx/weather-monitor/internal/view"
)

var validate = validator.New()

// cityState is the fixed region every user-added city belongs to.
const cityState = "Rajasthan"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, ctrl *view.Controller, st store.Store, geocoderAPIKey string) {
	registerRefreshStatus(app, st)

	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(dashboard.Build(ctrl.Snapshot()))
	})

	v1.Post("/refresh", func(c *fiber.Ctx) error {
		ctrl.Refresh(c.Context())
		return c.JSON(dashboard.Build(ctrl.Snapshot()))
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		cities, err := st.ActiveCities(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch cities")
		}
		if cities == nil {
			cities = []domain.City{}
		}
		return c.JSON(cities)
	})

	v1.Post("/cities", func(c *fiber.Ctx) error {
		return handleAddCity(c, ctrl, st)
	})

	v1.Post("/cities/select", func(c *fiber.Ctx) error {
		var req selectCityRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "city_id is required")
		}

		ctrl.SelectCity(c.Context(), req.CityID)
		return c.JSON(dashboard.Build(ctrl.Snapshot()))
	})

	if geocoderAPIKey != "" {
		geocoder.ApiKey = geocoderAPIKey
	}
	v1.Get("/cities/lookup", func(c *fiber.Ctx) error {
		return handleCityLookup(c, geocoderAPIKey)
	})
}

// addCityRequest is the add-city form payload. Elevation is optional; the
// flags are fixed server-side.
type addCityRequest struct {
	Name       string   `json:"name" validate:"required"`
	Latitude   float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64  `json:"longitude" validate:"gte=-180,lte=180"`
	ElevationM *float64 `json:"elevation_m"`
}

type selectCityRequest struct {
	CityID string `json:"city_id" validate:"required"`
}

func handleAddCity(c *fiber.Ctx, ctrl *view.Controller, st store.Store) error {
	var req addCityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, formValidationMessage(err))
	}

	city := domain.NewCity{
		ID:         uuid.NewString(),
		Name:       req.Name,
		State:      cityState,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		ElevationM: req.ElevationM,
		IsDefault:  false,
		IsActive:   true,
	}

	if err := st.InsertCity(c.Context(), city); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateCity):
			return fiber.NewError(fiber.StatusConflict, "A city with this name already exists.")
		case errors.Is(err, store.ErrDisabled):
			return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
		default:
			// Any other write failure surfaces the backend message as-is.
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	// Pick the new city up on the next snapshot without holding the response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ctrl.Refresh(ctx)
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"city":    city,
	})
}

// formValidationMessage maps the first failed field to the form's inline
// message.
func formValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	switch verrs[0].Field() {
	case "Name":
		return "City name is required."
	case "Latitude":
		return "Latitude must be between -90 and 90."
	case "Longitude":
		return "Longitude must be between -180 and 180."
	}
	return verrs[0].Error()
}

func handleCityLookup(c *fiber.Ctx, apiKey string) error {
	if apiKey == "" {
		return fiber.NewError(fiber.StatusNotImplemented, "geocoder API key not configured")
	}

	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name query parameter is required")
	}

	address := geocoder.Address{
		City:    name,
		State:   cityState,
		Country: "India",
	}
	location, err := geocoder.Geocoding(address)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "geocoding failed: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"name":      name,
		"latitude":  location.Latitude,
		"longitude": location.Longitude,
	})
}

// registerRefreshStatus mounts the data-freshness endpoint the backend
// pipeline's operators poll. POST reports the latest row timestamps; GET
// returns static usage documentation.
func registerRefreshStatus(app *fiber.App, st store.Store) {
	app.Post("/refresh-status", func(c *fiber.Ctx) error {
		status, err := st.DataStatus(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to check data status",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Data status retrieved",
			"data": fiber.Map{
				"latest_weather": status.LatestWeather,
				"latest_aqi":     status.LatestAQI,
				"active_alerts":  status.ActiveAlerts,
				"timestamp":      time.Now().UTC().Format(time.RFC3339),
			},
		})
	})

	app.Get("/refresh-status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Rajasthan Weather API - Use POST to check data status",
			"docs": fiber.Map{
				"POST": "/refresh-status - Check latest data timestamps",
			},
		})
	})
}
