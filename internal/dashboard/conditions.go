// Package dashboard turns a view snapshot into the JSON view-models the
// dashboard renders: cards, the AQI gauge, chart series, and advisories.
// Builders are pure functions of their inputs; derived-metric mapping happens
// here at the boundary, never in the transport layer.
package dashboard

import (
	"fmt"

	"github.com/rajasthanwx/weather-monitor/internal/derive"
	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// heatwaveBadgeTempC is the live-reading threshold above which the hero card
// carries a heatwave badge.
const heatwaveBadgeTempC = 42.0

// ConditionsCard is the hero card for the selected city's live weather.
type ConditionsCard struct {
	Available bool   `json:"available"`
	CityName  string `json:"city_name,omitempty"`
	State     string `json:"state,omitempty"`
	Coords    string `json:"coords,omitempty"`
	Elevation string `json:"elevation,omitempty"`

	Temperature   string          `json:"temperature"`
	FeelsLike     string          `json:"feels_like"`
	HeatLevel     derive.HeatInfo `json:"heat_level"`
	HeatwaveBadge bool            `json:"heatwave_badge"`

	Condition string `json:"condition"`
	Icon      string `json:"icon"`

	Humidity      string `json:"humidity"`
	DewPoint      string `json:"dew_point"`
	Wind          string `json:"wind"`
	WindDirection string `json:"wind_direction"`
	Gusts         string `json:"gusts"`
	Pressure      string `json:"pressure"`
	Visibility    string `json:"visibility"`
	CloudCover    string `json:"cloud_cover"`
	UVIndex       string `json:"uv_index"`
	Precipitation string `json:"precipitation"`

	ObservedAgo string `json:"observed_ago,omitempty"`
}

// BuildConditionsCard renders the live-weather hero card. A nil sample or
// city yields the empty-card placeholder the UI shows before the pipeline has
// produced data.
func BuildConditionsCard(w *domain.WeatherSample, city *domain.City) ConditionsCard {
	if w == nil || city == nil {
		return ConditionsCard{Available: false}
	}

	code := domain.WeatherCodeLookup(w.WeatherCode)
	heat := derive.HeatLevel(w.Temperature2m)

	card := ConditionsCard{
		Available:     true,
		CityName:      city.Name,
		State:         city.State,
		Coords:        fmt.Sprintf("%.2f°N, %.2f°E", city.Latitude, city.Longitude),
		Temperature:   derive.FormatTemp(w.Temperature2m),
		FeelsLike:     derive.FormatTemp(w.ApparentTemperature),
		HeatLevel:     heat,
		HeatwaveBadge: w.Temperature2m != nil && *w.Temperature2m > heatwaveBadgeTempC,
		Condition:     code.Description,
		Icon:          code.Icon,
		Humidity:      derive.FormatPercent(w.RelativeHumidity2m),
		DewPoint:      derive.FormatTemp(w.Dewpoint2m),
		Wind:          derive.FormatWind(w.WindSpeed10m),
		WindDirection: derive.CompassDirection(w.WindDirection10m),
		Gusts:         derive.FormatWind(w.WindGusts10m),
		Pressure:      formatPressure(w.SurfacePressure),
		Visibility:    formatVisibility(w.Visibility),
		CloudCover:    derive.FormatPercent(w.CloudCover),
		UVIndex:       formatUV(w.UVIndex),
		Precipitation: derive.FormatPrecip(&w.Precipitation),
		ObservedAgo:   derive.RelativeTime(w.RecordedAt),
	}

	if city.ElevationM != nil {
		card.Elevation = fmt.Sprintf("%.0f m", *city.ElevationM)
	}
	return card
}

func formatPressure(hpa *float64) string {
	if hpa == nil {
		return derive.Placeholder
	}
	return fmt.Sprintf("%.0f hPa", *hpa)
}

// formatVisibility converts the datastore's meters to kilometers.
func formatVisibility(meters *float64) string {
	if meters == nil {
		return derive.Placeholder
	}
	return fmt.Sprintf("%.1f km", *meters/1000)
}

func formatUV(uv *float64) string {
	if uv == nil {
		return derive.Placeholder
	}
	return fmt.Sprintf("%.1f", *uv)
}
