package derive

import (
	"fmt"
	"math"
	"time"
)

// FormatTemp renders a temperature rounded to the nearest degree.
func FormatTemp(temp *float64) string {
	if temp == nil {
		return Placeholder
	}
	return fmt.Sprintf("%d°C", int(math.Round(*temp)))
}

// FormatWind renders a wind speed rounded to the nearest km/h.
func FormatWind(speed *float64) string {
	if speed == nil {
		return Placeholder
	}
	return fmt.Sprintf("%d km/h", int(math.Round(*speed)))
}

// FormatPrecip renders a rainfall amount with one decimal.
func FormatPrecip(mm *float64) string {
	if mm == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f mm", *mm)
}

// FormatConcentration renders a pollutant concentration with one decimal.
func FormatConcentration(ugm3 *float64) string {
	if ugm3 == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f µg/m³", *ugm3)
}

// FormatPercent renders a 0-100 percentage value.
func FormatPercent(pct *float64) string {
	if pct == nil {
		return Placeholder
	}
	return fmt.Sprintf("%d%%", int(math.Round(*pct)))
}

// FormatDate renders a calendar date as "Mon, Jan 2". Dates arrive from the
// datastore as YYYY-MM-DD strings.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// FormatClock renders a timestamp as a 12-hour wall-clock time.
func FormatClock(ts time.Time) string {
	return ts.Format("03:04 PM")
}
