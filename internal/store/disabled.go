package store

import (
	"context"
	"log"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// DisabledStore stands in when the datastore endpoint/key were never
// configured. Every read resolves to empty rather than failing, so the
// service still boots and renders an empty dashboard; writes are refused.
type DisabledStore struct{}

// NewDisabledStore warns once and returns the no-op store.
func NewDisabledStore() *DisabledStore {
	log.Printf("WARN: datastore endpoint/key not set; all data operations are disabled")
	return &DisabledStore{}
}

func (*DisabledStore) ActiveCities(context.Context) ([]domain.City, error) {
	return nil, nil
}

func (*DisabledStore) LatestWeather(context.Context, string) (*domain.WeatherSample, error) {
	return nil, ErrNotFound
}

func (*DisabledStore) LatestAirQuality(context.Context, string) (*domain.AirQualitySample, error) {
	return nil, ErrNotFound
}

func (*DisabledStore) ForecastWindow(context.Context, string, int) ([]domain.DailyAggregate, error) {
	return nil, nil
}

func (*DisabledStore) HourlyWindow(context.Context, string, time.Duration) ([]domain.WeatherSample, error) {
	return nil, nil
}

func (*DisabledStore) ActiveAlerts(context.Context, string, int) ([]domain.Alert, error) {
	return nil, nil
}

func (*DisabledStore) DataStatus(context.Context) (domain.DataStatus, error) {
	return domain.DataStatus{}, ErrDisabled
}

func (*DisabledStore) InsertCity(context.Context, domain.NewCity) error {
	return ErrDisabled
}
