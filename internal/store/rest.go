package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

const uniqueViolationCode = "23505"

// RestStore talks to the hosted datastore's REST interface (PostgREST
// dialect: eq./gte./lte. filters, order, limit, embedded resources).
// All access is keyed by the endpoint URL and the public anon key.
type RestStore struct {
	baseURL string
	apiKey  string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewRestStore creates a datastore client for the given endpoint and key.
func NewRestStore(client *http.Client, endpoint, apiKey string) *RestStore {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "datastore",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &RestStore{
		baseURL: strings.TrimRight(endpoint, "/") + "/rest/v1",
		apiKey:  apiKey,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

// restError is the error body the datastore returns for failed requests.
type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (s *RestStore) do(ctx context.Context, method, table string, params url.Values, body []byte, prefer string) (*http.Response, error) {
	buildRequest := func() (*http.Request, error) {
		u := s.baseURL + "/" + table
		if len(params) > 0 {
			u += "?" + params.Encode()
		}

		var rdr io.Reader
		if body != nil {
			rdr = bytes.NewReader(body)
		}

		req, err := http.NewRequest(method, u, rdr)
		if err != nil {
			return nil, err
		}

		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if prefer != "" {
			req.Header.Set("Prefer", prefer)
		}
		return req, nil
	}

	return doRequestWithResilience(ctx, s.httpCfg, s.circuit, buildRequest)
}

// getJSON runs a read query and decodes the row set into out.
func (s *RestStore) getJSON(ctx context.Context, table string, params url.Values, out interface{}) error {
	resp, err := s.do(ctx, http.MethodGet, table, params, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeRestError(resp, table)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeRestError(resp *http.Response, table string) error {
	var re restError
	if err := json.NewDecoder(resp.Body).Decode(&re); err != nil || re.Message == "" {
		return fmt.Errorf("datastore query on %s failed: status %d", table, resp.StatusCode)
	}
	if re.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrDuplicateCity, re.Message)
	}
	return fmt.Errorf("datastore query on %s failed: %s", table, re.Message)
}

// ActiveCities implements Store.
func (s *RestStore) ActiveCities(ctx context.Context) ([]domain.City, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("is_active", "eq.true")
	params.Set("order", "name.asc")

	var cities []domain.City
	if err := s.getJSON(ctx, "cities", params, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// LatestWeather implements Store. Only observed rows qualify; forecast rows
// are excluded by the is_forecast filter.
func (s *RestStore) LatestWeather(ctx context.Context, cityID string) (*domain.WeatherSample, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("city_id", "eq."+cityID)
	params.Set("is_forecast", "eq.false")
	params.Set("order", "recorded_at.desc")
	params.Set("limit", "1")

	var rows []domain.WeatherSample
	if err := s.getJSON(ctx, "weather_data", params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// LatestAirQuality implements Store.
func (s *RestStore) LatestAirQuality(ctx context.Context, cityID string) (*domain.AirQualitySample, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("city_id", "eq."+cityID)
	params.Set("order", "recorded_at.desc")
	params.Set("limit", "1")

	var rows []domain.AirQualitySample
	if err := s.getJSON(ctx, "air_quality_data", params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// ForecastWindow implements Store.
func (s *RestStore) ForecastWindow(ctx context.Context, cityID string, days int) ([]domain.DailyAggregate, error) {
	today := time.Now().UTC().Format("2006-01-02")

	params := url.Values{}
	params.Set("select", "*")
	params.Set("city_id", "eq."+cityID)
	params.Set("date", "gte."+today)
	params.Set("order", "date.asc")
	params.Set("limit", strconv.Itoa(days))

	var rows []domain.DailyAggregate
	if err := s.getJSON(ctx, "daily_aggregates", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// HourlyWindow implements Store. Rows within +/-window of now, observed and
// forecast alike, ordered by recording time for charting.
func (s *RestStore) HourlyWindow(ctx context.Context, cityID string, window time.Duration) ([]domain.WeatherSample, error) {
	now := time.Now().UTC()

	params := url.Values{}
	params.Set("select", "*")
	params.Set("city_id", "eq."+cityID)
	params.Add("recorded_at", "gte."+now.Add(-window).Format(time.RFC3339))
	params.Add("recorded_at", "lte."+now.Add(window).Format(time.RFC3339))
	params.Set("order", "recorded_at.asc")

	var rows []domain.WeatherSample
	if err := s.getJSON(ctx, "weather_data", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// alertRow carries the embedded city name from the alerts->cities join.
type alertRow struct {
	domain.Alert
	Cities *struct {
		Name string `json:"name"`
	} `json:"cities"`
}

// ActiveAlerts implements Store.
func (s *RestStore) ActiveAlerts(ctx context.Context, cityID string, limit int) ([]domain.Alert, error) {
	params := url.Values{}
	params.Set("select", "*,cities(name)")
	params.Set("is_active", "eq.true")
	params.Set("order", "starts_at.desc")
	params.Set("limit", strconv.Itoa(limit))
	if cityID != "" {
		params.Set("city_id", "eq."+cityID)
	}

	var rows []alertRow
	if err := s.getJSON(ctx, "alerts", params, &rows); err != nil {
		return nil, err
	}

	alerts := make([]domain.Alert, 0, len(rows))
	for _, r := range rows {
		a := r.Alert
		if r.Cities != nil {
			a.CityName = r.Cities.Name
		} else {
			a.CityName = "Unknown"
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}

// DataStatus implements Store.
func (s *RestStore) DataStatus(ctx context.Context) (domain.DataStatus, error) {
	var status domain.DataStatus

	latest := func(table string) (*time.Time, error) {
		params := url.Values{}
		params.Set("select", "recorded_at")
		params.Set("order", "recorded_at.desc")
		params.Set("limit", "1")

		var rows []struct {
			RecordedAt time.Time `json:"recorded_at"`
		}
		if err := s.getJSON(ctx, table, params, &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, nil
		}
		ts := rows[0].RecordedAt
		return &ts, nil
	}

	var err error
	if status.LatestWeather, err = latest("weather_data"); err != nil {
		return status, err
	}
	if status.LatestAQI, err = latest("air_quality_data"); err != nil {
		return status, err
	}

	count, err := s.countActiveAlerts(ctx)
	if err != nil {
		return status, err
	}
	status.ActiveAlerts = count

	return status, nil
}

// countActiveAlerts issues a head count request; the total arrives in the
// Content-Range header ("0-19/57" or "*/57").
func (s *RestStore) countActiveAlerts(ctx context.Context) (int, error) {
	params := url.Values{}
	params.Set("select", "id")
	params.Set("is_active", "eq.true")

	resp, err := s.do(ctx, http.MethodHead, "alerts", params, nil, "count=exact")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("datastore alert count failed: status %d", resp.StatusCode)
	}

	cr := resp.Header.Get("Content-Range")
	idx := strings.LastIndex(cr, "/")
	if idx < 0 {
		return 0, fmt.Errorf("datastore alert count: unexpected Content-Range %q", cr)
	}
	total := cr[idx+1:]
	if total == "*" {
		return 0, nil
	}
	return strconv.Atoi(total)
}

// InsertCity implements Store. A unique-violation on the city name maps to
// ErrDuplicateCity; any other rejection surfaces the backend message as-is.
func (s *RestStore) InsertCity(ctx context.Context, city domain.NewCity) error {
	body, err := json.Marshal(city)
	if err != nil {
		return err
	}

	resp, err := s.do(ctx, http.MethodPost, "cities", nil, body, "return=minimal")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeRestError(resp, "cities")
	}
	return nil
}
