package derive

import (
	"testing"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

func f(v float64) *float64 { return &v }

// TestAQIBandsExhaustive walks the full scale and checks the six bands are
// contiguous, ordered, and terminate at Hazardous for anything above 300.
func TestAQIBandsExhaustive(t *testing.T) {
	cases := []struct {
		value float64
		label string
	}{
		{0, "Good"},
		{50, "Good"},
		{51, "Moderate"},
		{100, "Moderate"},
		{101, "Unhealthy for Sensitive"},
		{150, "Unhealthy for Sensitive"},
		{151, "Unhealthy"},
		{200, "Unhealthy"},
		{201, "Very Unhealthy"},
		{300, "Very Unhealthy"},
		{301, "Hazardous"},
		{500, "Hazardous"},
		{1200, "Hazardous"},
	}

	for _, tc := range cases {
		got := AQICategory(f(tc.value))
		if got.Label != tc.label {
			t.Errorf("AQICategory(%v).Label = %q, want %q", tc.value, got.Label, tc.label)
		}
	}

	// No gaps: each band's upper bound +1 lands in the next band.
	prev := AQICategory(f(0))
	for v := 1.0; v <= 400; v++ {
		cur := AQICategory(f(v))
		if cur.Label != prev.Label && v != prev.RangeHigh+1 {
			t.Fatalf("band changed to %q at %v, expected boundary at %v", cur.Label, v, prev.RangeHigh+1)
		}
		prev = cur
	}
}

func TestAQICategoryNilIsPlaceholder(t *testing.T) {
	got := AQICategory(nil)
	if got.Label != "Good" {
		t.Errorf("AQICategory(nil).Label = %q, want Good", got.Label)
	}
	if got.Advice != "Air quality data unavailable." {
		t.Errorf("AQICategory(nil).Advice = %q, want unavailable-data advice", got.Advice)
	}
}

func TestHeatLevel(t *testing.T) {
	cases := []struct {
		temp  float64
		label string
	}{
		{47, "Extreme Heat"},
		{50, "Extreme Heat"},
		{44, "Severe Heat"},
		{42, "Heatwave"},
		{41.9, "Very Hot"},
		{38, "Very Hot"},
		{33, "Hot"},
		{25, "Warm"},
		{15, "Pleasant"},
		{5, "Cool"},
		{4.9, "Cold"},
		{-2, "Cold"},
	}

	for _, tc := range cases {
		if got := HeatLevel(f(tc.temp)); got.Label != tc.label {
			t.Errorf("HeatLevel(%v).Label = %q, want %q", tc.temp, got.Label, tc.label)
		}
	}

	if got := HeatLevel(nil); got.Label != "Unknown" {
		t.Errorf("HeatLevel(nil).Label = %q, want Unknown", got.Label)
	}
}

func TestCompassDirection(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{359, "N"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{22.5, "NNE"},
		{337.5, "NNW"},
	}

	for _, tc := range cases {
		if got := CompassDirection(f(tc.degrees)); got != tc.want {
			t.Errorf("CompassDirection(%v) = %q, want %q", tc.degrees, got, tc.want)
		}
	}

	if got := CompassDirection(nil); got != Placeholder {
		t.Errorf("CompassDirection(nil) = %q, want %q", got, Placeholder)
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	ordered := []domain.Severity{
		domain.SeverityExtreme,
		domain.SeverityHigh,
		domain.SeverityModerate,
		domain.SeverityLow,
	}
	for i := 1; i < len(ordered); i++ {
		if SeverityRank(ordered[i-1]) >= SeverityRank(ordered[i]) {
			t.Errorf("SeverityRank(%s) should rank before %s", ordered[i-1], ordered[i])
		}
	}

	if SeverityRank(domain.Severity("bogus")) <= SeverityRank(domain.SeverityLow) {
		t.Error("unknown severities must sort last")
	}
}

func TestRelativeTimeBuckets(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ts   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "Just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-59 * time.Minute), "59m ago"},
		{now.Add(-90 * time.Minute), "1h ago"},
		{now.Add(-23 * time.Hour), "23h ago"},
		{now.Add(-25 * time.Hour), "1d ago"},
		{now.Add(-72 * time.Hour), "3d ago"},
	}

	for _, tc := range cases {
		if got := relativeTimeAt(tc.ts, now); got != tc.want {
			t.Errorf("relativeTimeAt(now-%v) = %q, want %q", now.Sub(tc.ts), got, tc.want)
		}
	}
}

func TestFormattersNilPlaceholder(t *testing.T) {
	if got := FormatTemp(nil); got != Placeholder {
		t.Errorf("FormatTemp(nil) = %q", got)
	}
	if got := FormatWind(nil); got != Placeholder {
		t.Errorf("FormatWind(nil) = %q", got)
	}
	if got := FormatPrecip(nil); got != Placeholder {
		t.Errorf("FormatPrecip(nil) = %q", got)
	}
	if got := FormatConcentration(nil); got != Placeholder {
		t.Errorf("FormatConcentration(nil) = %q", got)
	}
	if got := FormatPercent(nil); got != Placeholder {
		t.Errorf("FormatPercent(nil) = %q", got)
	}
}

func TestFormattersRounding(t *testing.T) {
	if got := FormatTemp(f(31.6)); got != "32°C" {
		t.Errorf("FormatTemp(31.6) = %q, want 32°C", got)
	}
	if got := FormatTemp(f(-0.4)); got != "0°C" {
		t.Errorf("FormatTemp(-0.4) = %q, want 0°C", got)
	}
	if got := FormatWind(f(14.2)); got != "14 km/h" {
		t.Errorf("FormatWind(14.2) = %q, want 14 km/h", got)
	}
	if got := FormatPrecip(f(6.55)); got != "6.5 mm" && got != "6.6 mm" {
		t.Errorf("FormatPrecip(6.55) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-08-29"); got != "Sat, Aug 29" {
		t.Errorf("FormatDate = %q, want Sat, Aug 29", got)
	}
	// Unparseable input falls through untouched rather than erroring.
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatDate(garbage) = %q", got)
	}
}
