package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

func newTestStore(handler http.HandlerFunc) (*RestStore, *httptest.Server) {
	srv := httptest.NewServer(handler)
	st := NewRestStore(srv.Client(), srv.URL, "test-anon-key")
	return st, srv
}

func TestLatestWeatherQueryShape(t *testing.T) {
	st, srv := newTestStore(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/weather_data" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("city_id") != "eq.jaipur" {
			t.Errorf("city_id = %q", q.Get("city_id"))
		}
		if q.Get("is_forecast") != "eq.false" {
			t.Errorf("is_forecast = %q", q.Get("is_forecast"))
		}
		if q.Get("order") != "recorded_at.desc" || q.Get("limit") != "1" {
			t.Errorf("order/limit = %q/%q", q.Get("order"), q.Get("limit"))
		}
		if r.Header.Get("apikey") != "test-anon-key" {
			t.Errorf("apikey header = %q", r.Header.Get("apikey"))
		}
		if r.Header.Get("Authorization") != "Bearer test-anon-key" {
			t.Errorf("authorization header = %q", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"w1","city_id":"jaipur","recorded_at":"2026-08-29T10:00:00+00:00","temperature_2m":41.5,"precipitation":0,"is_forecast":false}]`))
	})
	defer srv.Close()

	sample, err := st.LatestWeather(context.Background(), "jaipur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.ID != "w1" || sample.Temperature2m == nil || *sample.Temperature2m != 41.5 {
		t.Errorf("decoded sample = %+v", sample)
	}
	// Nullable columns absent from the row stay nil.
	if sample.WindSpeed10m != nil {
		t.Error("absent wind reading must decode to nil")
	}
}

func TestLatestWeatherNotFound(t *testing.T) {
	st, srv := newTestStore(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	_, err := st.LatestWeather(context.Background(), "jaipur")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHourlyWindowRangeFilters(t *testing.T) {
	st, srv := newTestStore(func(w http.ResponseWriter, r *http.Request) {
		vals := r.URL.Query()["recorded_at"]
		if len(vals) != 2 {
			t.Fatalf("expected two recorded_at filters, got %v", vals)
		}
		var gte, lte bool
		for _, v := range vals {
			if strings.HasPrefix(v, "gte.") {
				gte = true
			}
			if strings.HasPrefix(v, "lte.") {
				lte = true
			}
		}
		if !gte || !lte {
			t.Errorf("expected gte and lte filters, got %v", vals)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	rows, err := st.HourlyWindow(context.Background(), "jaipur", 24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestActiveAlertsJoinFlattening(t *testing.T) {
	st, srv := newTestStore(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("select") != "*,cities(name)" {
			t.Errorf("select = %q", q.Get("select"))
		}
		if q.Get("is_active") != "eq.true" {
			t.Errorf("is_active = %q", q.Get("is_active"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"a1","city_id":"jaipur","severity":"high","title":"Heatwave warning","starts_at":"2026-08-29T06:00:00+00:00","is_active":true,"cities":{"name":"Jaipur"}},
			{"id":"a2","city_id":"ghost","severity":"low","title":"Orphan","starts_at":"2026-08-29T06:00:00+00:00","is_active":true,"cities":null}
		]`))
	})
	defer srv.Close()

	alerts, err := st.ActiveAlerts(context.Background(), "", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].CityName != "Jaipur" {
		t.Errorf("city name = %q, want Jaipur", alerts[0].CityName)
	}
	if alerts[1].CityName != "Unknown" {
		t.Errorf("missing embed should flatten to Unknown, got %q", alerts[1].CityName)
	}
}

func TestInsertCityDuplicate(t *testing.T) {
	st, srv := newTestStore(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/v1/cities" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint \"cities_name_key\""}`))
	})
	defer srv.Close()

	err := st.InsertCity(context.Background(), domain.NewCity{Name: "Jaipur", State: "Rajasthan"})
	if !errors.Is(err, ErrDuplicateCity) {
		t.Fatalf("expected ErrDuplicateCity, got %v", err)
	}
}

func TestInsertCityErrorMessage(t *testing.T) {
	st, srv := newTestStore(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"22P02","message":"invalid input syntax for type numeric"}`))
	})
	defer srv.Close()

	err := st.InsertCity(context.Background(), domain.NewCity{Name: "Jaipur", State: "Rajasthan"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrDuplicateCity) {
		t.Fatal("non-unique-violation errors must not map to ErrDuplicateCity")
	}
	if !strings.Contains(err.Error(), "invalid input syntax") {
		t.Errorf("error should carry the datastore message, got %v", err)
	}
}

func TestDataStatus(t *testing.T) {
	st, srv := newTestStore(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/rest/v1/alerts":
			if r.Header.Get("Prefer") != "count=exact" {
				t.Errorf("Prefer = %q", r.Header.Get("Prefer"))
			}
			w.Header().Set("Content-Range", "0-2/3")
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/rest/v1/weather_data":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"recorded_at":"2026-08-29T10:00:00+00:00"}]`))
		case r.URL.Path == "/rest/v1/air_quality_data":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"recorded_at":"2026-08-29T09:30:00+00:00"}]`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer srv.Close()

	status, err := st.DataStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.ActiveAlerts != 3 {
		t.Errorf("active alerts = %d, want 3", status.ActiveAlerts)
	}
	if status.LatestWeather == nil || status.LatestWeather.Hour() != 10 {
		t.Errorf("latest weather = %v", status.LatestWeather)
	}
	if status.LatestAQI == nil || status.LatestAQI.Minute() != 30 {
		t.Errorf("latest air quality = %v", status.LatestAQI)
	}
}

func TestDisabledStore(t *testing.T) {
	st := NewDisabledStore()

	cities, err := st.ActiveCities(context.Background())
	if err != nil || len(cities) != 0 {
		t.Errorf("disabled reads should be empty, got %v, %v", cities, err)
	}
	if _, err := st.LatestWeather(context.Background(), "jaipur"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := st.InsertCity(context.Background(), domain.NewCity{Name: "Jaipur"}); !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}
