package dashboard

import (
	"fmt"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/derive"
	"github.com/rajasthanwx/weather-monitor/internal/domain"
	"github.com/rajasthanwx/weather-monitor/internal/view"
)

// CityOption is one entry of the city selector and the all-cities overview.
type CityOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Coords     string `json:"coords"`
	Elevation  string `json:"elevation,omitempty"`
	IsDefault  bool   `json:"is_default"`
	IsSelected bool   `json:"is_selected"`
}

// View is the complete dashboard payload.
type View struct {
	State          string     `json:"state"`
	Error          string     `json:"error,omitempty"`
	ErrorHint      string     `json:"error_hint,omitempty"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
	LastUpdatedAgo string     `json:"last_updated_ago,omitempty"`

	Cities         []CityOption `json:"cities"`
	SelectedCityID string       `json:"selected_city_id,omitempty"`

	Conditions ConditionsCard `json:"conditions"`
	AQI        GaugeView      `json:"aqi"`
	Forecast   ForecastView   `json:"forecast"`
	Charts     ChartsView     `json:"charts"`
	Monsoon    MonsoonView    `json:"monsoon"`
	Tips       []Tip          `json:"tips"`
	Alerts     AlertList      `json:"alerts"`
}

// Build renders the whole dashboard from one snapshot. In the error state
// only the banner fields carry data; cards render their empty placeholders.
func Build(snap view.Snapshot) View {
	v := View{
		State:          string(snap.State),
		Error:          snap.Err,
		SelectedCityID: snap.SelectedCityID,
		Cities:         []CityOption{},
	}
	if snap.Err != "" {
		v.ErrorHint = "Make sure you've run the database schema and backend pipeline first."
	}
	if !snap.LastUpdated.IsZero() {
		ts := snap.LastUpdated
		v.LastUpdated = &ts
		v.LastUpdatedAgo = derive.RelativeTime(ts)
	}

	selected := selectedCity(snap)
	selectedID := ""
	if selected != nil {
		selectedID = selected.ID
	}

	for _, c := range snap.Cities {
		opt := CityOption{
			ID:         c.ID,
			Name:       c.Name,
			Coords:     fmt.Sprintf("%.2f°N, %.2f°E", c.Latitude, c.Longitude),
			IsDefault:  c.IsDefault,
			IsSelected: c.ID == selectedID,
		}
		if c.ElevationM != nil {
			opt.Elevation = fmt.Sprintf("%.0fm", *c.ElevationM)
		}
		v.Cities = append(v.Cities, opt)
	}

	v.Conditions = BuildConditionsCard(snap.CurrentWeather, selected)
	v.AQI = BuildGauge(snap.CurrentAQI)
	v.Forecast = BuildForecast(snap.Forecast)
	v.Charts = BuildCharts(snap.Hourly, snap.Forecast)
	v.Tips = BuildHealthTips(snap.CurrentAQI, snap.CurrentWeather)
	v.Alerts = BuildAlertList(snap.Alerts)

	cityName := ""
	if selected != nil {
		cityName = selected.Name
	}
	v.Monsoon = BuildMonsoon(snap.Forecast, cityName, time.Now())

	return v
}

// selectedCity resolves the explicit selection, else the first city by name
// ordering, else nil.
func selectedCity(snap view.Snapshot) *domain.City {
	if snap.SelectedCityID != "" {
		for i := range snap.Cities {
			if snap.Cities[i].ID == snap.SelectedCityID {
				return &snap.Cities[i]
			}
		}
	}
	if len(snap.Cities) > 0 {
		return &snap.Cities[0]
	}
	return nil
}
