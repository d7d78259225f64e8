package dashboard

import (
	"math"
	"testing"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

func f(v float64) *float64 { return &v }

func day(date string, min, max *float64) domain.DailyAggregate {
	return domain.DailyAggregate{Date: date, TempMin: min, TempMax: max}
}

func TestBuildForecastBarScaling(t *testing.T) {
	forecast := []domain.DailyAggregate{
		day("2026-08-29", f(20), f(30)),
		day("2026-08-30", f(25), f(40)),
	}

	v := BuildForecast(forecast)
	if !v.Available {
		t.Fatal("expected available forecast view")
	}
	if len(v.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(v.Days))
	}

	// Axis spans 20..40. First day: 20->30 occupies 0%..50%.
	d0 := v.Days[0]
	if d0.BarStartPct != 0 || d0.BarWidthPct != 50 {
		t.Errorf("day 0 bar = start %.1f width %.1f, want 0/50", d0.BarStartPct, d0.BarWidthPct)
	}
	// Second day: 25->40 occupies 25%..100%.
	d1 := v.Days[1]
	if d1.BarStartPct != 25 || d1.BarWidthPct != 75 {
		t.Errorf("day 1 bar = start %.1f width %.1f, want 25/75", d1.BarStartPct, d1.BarWidthPct)
	}

	if !d0.IsToday || d0.Label != "Today" {
		t.Errorf("first day should be labeled Today, got %q", d0.Label)
	}
}

// TestBuildForecastFlatWindow pins the degenerate case where every day has
// the same temperature: the scaling must stay defined instead of dividing by
// zero.
func TestBuildForecastFlatWindow(t *testing.T) {
	forecast := []domain.DailyAggregate{
		day("2026-08-29", f(30), f(30)),
		day("2026-08-30", f(30), f(30)),
		day("2026-08-31", f(30), f(30)),
	}

	v := BuildForecast(forecast)
	for i, d := range v.Days {
		if math.IsNaN(d.BarStartPct) || math.IsNaN(d.BarWidthPct) ||
			math.IsInf(d.BarStartPct, 0) || math.IsInf(d.BarWidthPct, 0) {
			t.Fatalf("day %d produced undefined bar values: %v/%v", i, d.BarStartPct, d.BarWidthPct)
		}
		if d.BarWidthPct != 0 {
			t.Errorf("day %d flat window width = %v, want 0", i, d.BarWidthPct)
		}
	}
}

func TestBuildForecastNullTemps(t *testing.T) {
	// A day with missing temps renders placeholders and must not shift the
	// shared axis.
	forecast := []domain.DailyAggregate{
		day("2026-08-29", f(20), f(30)),
		day("2026-08-30", nil, nil),
	}

	v := BuildForecast(forecast)
	d1 := v.Days[1]
	if d1.TempMin != "--" || d1.TempMax != "--" {
		t.Errorf("null temps should render placeholders, got %q/%q", d1.TempMin, d1.TempMax)
	}
	if math.IsNaN(d1.BarStartPct) || math.IsNaN(d1.BarWidthPct) {
		t.Error("null temps must not produce NaN bars")
	}
}

func TestBuildForecastEmpty(t *testing.T) {
	v := BuildForecast(nil)
	if v.Available {
		t.Error("empty forecast should be unavailable")
	}
}

func TestBuildForecastAllNullTemps(t *testing.T) {
	forecast := []domain.DailyAggregate{
		day("2026-08-29", nil, nil),
		day("2026-08-30", nil, nil),
	}

	v := BuildForecast(forecast)
	for i, d := range v.Days {
		if math.IsNaN(d.BarStartPct) || math.IsNaN(d.BarWidthPct) {
			t.Fatalf("day %d produced NaN with no temps at all", i)
		}
	}
}
