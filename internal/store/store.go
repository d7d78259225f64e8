// Package store is the read-mostly data-access layer over the hosted
// datastore. Rows are precomputed by the backend pipeline; this service only
// queries them, plus a single write path for user-added cities.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

var (
	// ErrNotFound is returned when a single-row query matches nothing.
	ErrNotFound = errors.New("no matching row")

	// ErrDuplicateCity is returned when an insert hits the unique
	// constraint on city name.
	ErrDuplicateCity = errors.New("city already exists")

	// ErrDisabled is returned by write paths when the datastore client was
	// never configured.
	ErrDisabled = errors.New("datastore client not configured")
)

// Store is the contract the dashboard reads through. One method per view
// concern, mirroring the queries the view-state controller fans out.
type Store interface {
	// ActiveCities lists active cities ordered by name.
	ActiveCities(ctx context.Context) ([]domain.City, error)

	// LatestWeather returns the most recent observed (non-forecast) sample.
	LatestWeather(ctx context.Context, cityID string) (*domain.WeatherSample, error)

	// LatestAirQuality returns the most recent air-quality sample.
	LatestAirQuality(ctx context.Context, cityID string) (*domain.AirQualitySample, error)

	// ForecastWindow returns daily aggregates from today forward, at most
	// days rows, ordered by date.
	ForecastWindow(ctx context.Context, cityID string, days int) ([]domain.DailyAggregate, error)

	// HourlyWindow returns hourly samples within +/-window of now, ordered
	// by recording time.
	HourlyWindow(ctx context.Context, cityID string, window time.Duration) ([]domain.WeatherSample, error)

	// ActiveAlerts returns up to limit active alerts, newest first, with
	// city names resolved. Empty cityID means all cities.
	ActiveAlerts(ctx context.Context, cityID string, limit int) ([]domain.Alert, error)

	// DataStatus reports the latest weather/AQI timestamps and the active
	// alert count.
	DataStatus(ctx context.Context) (domain.DataStatus, error)

	// InsertCity adds a user-defined city.
	InsertCity(ctx context.Context, city domain.NewCity) error
}
