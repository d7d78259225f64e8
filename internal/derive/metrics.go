// Package derive maps raw numeric readings to the categorical and display
// values the dashboard shows. Every function here treats absent data as an
// explicit placeholder; nothing panics on a nil reading.
package derive

import (
	"math"
	"strconv"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// Placeholder is rendered wherever a reading is absent.
const Placeholder = "--"

// CategoryInfo describes one US AQI band.
type CategoryInfo struct {
	Label      string  `json:"label"`
	ColorToken string  `json:"color"`
	RangeLow   float64 `json:"range_low"`
	RangeHigh  float64 `json:"range_high"` // 0 means unbounded above
	Advice     string  `json:"advice"`
}

// aqiBands partition [0, inf) into the six fixed US AQI categories.
// Bands are closed-open except Hazardous, which is unbounded above.
var aqiBands = []CategoryInfo{
	{Label: "Good", ColorToken: "aqi-good", RangeLow: 0, RangeHigh: 50,
		Advice: "Air quality is satisfactory. Enjoy outdoor activities!"},
	{Label: "Moderate", ColorToken: "aqi-moderate", RangeLow: 51, RangeHigh: 100,
		Advice: "Acceptable air quality. Sensitive individuals should limit prolonged outdoor exertion."},
	{Label: "Unhealthy for Sensitive", ColorToken: "aqi-usg", RangeLow: 101, RangeHigh: 150,
		Advice: "People with respiratory conditions, elderly, and children should reduce outdoor activity."},
	{Label: "Unhealthy", ColorToken: "aqi-unhealthy", RangeLow: 151, RangeHigh: 200,
		Advice: "Everyone may experience health effects. Avoid prolonged outdoor exertion."},
	{Label: "Very Unhealthy", ColorToken: "aqi-very-unhealthy", RangeLow: 201, RangeHigh: 300,
		Advice: "Health alert! Everyone should avoid outdoor activity. Wear N95 masks outside."},
	{Label: "Hazardous", ColorToken: "aqi-hazardous", RangeLow: 301, RangeHigh: 0,
		Advice: "Health emergency! Do NOT go outside. Keep windows and doors closed."},
}

// AQICategory maps a US AQI scalar onto its band. A nil reading maps to the
// Good band with an unavailable-data advisory; that is a deliberate
// placeholder policy for gaps in pipeline coverage, not an error path.
func AQICategory(aqi *float64) CategoryInfo {
	if aqi == nil {
		band := aqiBands[0]
		band.Advice = "Air quality data unavailable."
		return band
	}
	switch v := *aqi; {
	case v <= 50:
		return aqiBands[0]
	case v <= 100:
		return aqiBands[1]
	case v <= 150:
		return aqiBands[2]
	case v <= 200:
		return aqiBands[3]
	case v <= 300:
		return aqiBands[4]
	default:
		return aqiBands[5]
	}
}

// HeatInfo is a classified heat level.
type HeatInfo struct {
	Label      string `json:"label"`
	ColorToken string `json:"color"`
}

// HeatLevel classifies an air temperature for Rajasthan conditions.
// Thresholds are half-open intervals from Cold (<5) to Extreme Heat (>=47).
func HeatLevel(tempC *float64) HeatInfo {
	if tempC == nil {
		return HeatInfo{Label: "Unknown", ColorToken: "heat-unknown"}
	}
	switch t := *tempC; {
	case t >= 47:
		return HeatInfo{Label: "Extreme Heat", ColorToken: "heat-extreme"}
	case t >= 44:
		return HeatInfo{Label: "Severe Heat", ColorToken: "heat-severe"}
	case t >= 42:
		return HeatInfo{Label: "Heatwave", ColorToken: "heat-heatwave"}
	case t >= 38:
		return HeatInfo{Label: "Very Hot", ColorToken: "heat-very-hot"}
	case t >= 33:
		return HeatInfo{Label: "Hot", ColorToken: "heat-hot"}
	case t >= 25:
		return HeatInfo{Label: "Warm", ColorToken: "heat-warm"}
	case t >= 15:
		return HeatInfo{Label: "Pleasant", ColorToken: "heat-pleasant"}
	case t >= 5:
		return HeatInfo{Label: "Cool", ColorToken: "heat-cool"}
	default:
		return HeatInfo{Label: "Cold", ColorToken: "heat-cold"}
	}
}

var compassRose = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassDirection converts wind direction degrees to a 16-point compass
// label. nil yields the placeholder.
func CompassDirection(degrees *float64) string {
	if degrees == nil {
		return Placeholder
	}
	idx := int(math.Round(*degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassRose[idx]
}

// SeverityRank orders alert severities for sorting: extreme first, low last,
// anything unrecognized after that.
func SeverityRank(s domain.Severity) int {
	switch s {
	case domain.SeverityExtreme:
		return 0
	case domain.SeverityHigh:
		return 1
	case domain.SeverityModerate:
		return 2
	case domain.SeverityLow:
		return 3
	default:
		return 4
	}
}

// RelativeTime buckets elapsed time since ts into a human string. It is
// computed against the wall clock at call time; callers re-invoke it on each
// render or poll rather than caching the result.
func RelativeTime(ts time.Time) string {
	return relativeTimeAt(ts, time.Now())
}

func relativeTimeAt(ts, now time.Time) string {
	mins := int(now.Sub(ts).Minutes())
	if mins < 1 {
		return "Just now"
	}
	if mins < 60 {
		return strconv.Itoa(mins) + "m ago"
	}
	hours := mins / 60
	if hours < 24 {
		return strconv.Itoa(hours) + "h ago"
	}
	return strconv.Itoa(hours/24) + "d ago"
}
