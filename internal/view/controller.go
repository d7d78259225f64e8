// Package view holds the dashboard's refresh/loading state machine. It fans
// out the per-city queries, collects their results fail-soft, and publishes
// an immutable snapshot the HTTP layer renders from.
package view

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
	"github.com/rajasthanwx/weather-monitor/internal/store"
)

// State is the controller's lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot is one consistent view of the dashboard data. Slices are owned by
// the snapshot and must not be mutated by readers.
type Snapshot struct {
	Cities         []domain.City
	CurrentWeather *domain.WeatherSample
	CurrentAQI     *domain.AirQualitySample
	Forecast       []domain.DailyAggregate
	Hourly         []domain.WeatherSample
	Alerts         []domain.Alert
	State          State
	Err            string
	LastUpdated    time.Time
	SelectedCityID string
}

// Options sizes the per-refresh query windows.
type Options struct {
	ForecastDays int
	HourlyWindow time.Duration
	AlertsLimit  int
}

// Controller orchestrates refreshes against the datastore. A monotonically
// increasing generation tags every refresh; a refresh that finishes after a
// newer one has started is discarded, so the published snapshot is always the
// latest trigger's result.
type Controller struct {
	store store.Store
	opts  Options
	gen   atomic.Uint64

	mu   sync.RWMutex
	snap Snapshot
}

// NewController creates a Controller in the idle state.
func NewController(st store.Store, opts Options) *Controller {
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = 7
	}
	if opts.HourlyWindow <= 0 {
		opts.HourlyWindow = 24 * time.Hour
	}
	if opts.AlertsLimit <= 0 {
		opts.AlertsLimit = 20
	}
	return &Controller{
		store: st,
		opts:  opts,
		snap:  Snapshot{State: StateIdle},
	}
}

// Snapshot returns a copy of the current snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// SelectCity changes the selected city and re-triggers a refresh.
func (c *Controller) SelectCity(ctx context.Context, cityID string) {
	c.mu.Lock()
	c.snap.SelectedCityID = cityID
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Refresh runs one full fetch cycle: the city-list query first, then the five
// per-city queries concurrently. Each per-city query fails soft to nil/empty;
// only a city-list failure (or an empty list with no selection) surfaces as a
// user-visible error with no partial data.
func (c *Controller) Refresh(ctx context.Context) {
	gen := c.gen.Inc()

	c.mu.Lock()
	c.snap.State = StateLoading
	c.snap.Err = ""
	selected := c.snap.SelectedCityID
	c.mu.Unlock()

	cities, err := c.store.ActiveCities(ctx)
	if err != nil {
		log.Printf("ERROR: failed to fetch cities: %v", err)
		c.publish(gen, Snapshot{
			State:          StateError,
			Err:            err.Error(),
			SelectedCityID: selected,
		})
		return
	}

	if selected == "" && len(cities) == 0 {
		c.publish(gen, Snapshot{
			Cities:         cities,
			State:          StateError,
			Err:            "No cities found. Run the backend pipeline first.",
			SelectedCityID: selected,
		})
		return
	}

	cityID := selected
	if cityID == "" {
		cityID = cities[0].ID
	}

	var (
		wg       sync.WaitGroup
		weather  *domain.WeatherSample
		aqi      *domain.AirQualitySample
		forecast []domain.DailyAggregate
		hourly   []domain.WeatherSample
		alerts   []domain.Alert
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		w, err := c.store.LatestWeather(ctx, cityID)
		if err != nil {
			logQueryFailure("current weather", err)
			return
		}
		weather = w
	}()
	go func() {
		defer wg.Done()
		a, err := c.store.LatestAirQuality(ctx, cityID)
		if err != nil {
			logQueryFailure("air quality", err)
			return
		}
		aqi = a
	}()
	go func() {
		defer wg.Done()
		f, err := c.store.ForecastWindow(ctx, cityID, c.opts.ForecastDays)
		if err != nil {
			logQueryFailure("forecast", err)
			return
		}
		forecast = f
	}()
	go func() {
		defer wg.Done()
		h, err := c.store.HourlyWindow(ctx, cityID, c.opts.HourlyWindow)
		if err != nil {
			logQueryFailure("hourly window", err)
			return
		}
		hourly = h
	}()
	go func() {
		defer wg.Done()
		a, err := c.store.ActiveAlerts(ctx, cityID, c.opts.AlertsLimit)
		if err != nil {
			logQueryFailure("alerts", err)
			return
		}
		alerts = a
	}()
	wg.Wait()

	if alerts == nil {
		alerts = []domain.Alert{}
	}

	c.publish(gen, Snapshot{
		Cities:         cities,
		CurrentWeather: weather,
		CurrentAQI:     aqi,
		Forecast:       forecast,
		Hourly:         hourly,
		Alerts:         alerts,
		State:          StateReady,
		LastUpdated:    time.Now().UTC(),
		SelectedCityID: selected,
	})
}

// publish installs the snapshot unless a newer refresh has started since this
// one began, in which case the stale result is dropped.
func (c *Controller) publish(gen uint64, snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen.Load() {
		log.Printf("DEBUG: discarding stale refresh result (generation %d)", gen)
		return
	}
	c.snap = snap
}

func logQueryFailure(what string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("DEBUG: no %s rows for selected city", what)
		return
	}
	log.Printf("ERROR: failed to fetch %s: %v", what, err)
}
