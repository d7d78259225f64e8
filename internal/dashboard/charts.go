package dashboard

import (
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// HourlyPoint is one hourly sample prepared for charting. Nullable readings
// stay nil so chart gaps render as gaps, not zeros.
type HourlyPoint struct {
	Time          string   `json:"time"`
	Temperature   *float64 `json:"temp"`
	FeelsLike     *float64 `json:"feels_like"`
	Humidity      *float64 `json:"humidity"`
	Precipitation float64  `json:"precipitation"`
	Wind          *float64 `json:"wind"`
	Gusts         *float64 `json:"gusts"`
	IsForecast    bool     `json:"is_forecast"`
}

// DailyPoint is one forecast day for the daily chart tabs.
type DailyPoint struct {
	Date          string   `json:"date"`
	TempMax       *float64 `json:"temp_max"`
	TempMin       *float64 `json:"temp_min"`
	Precipitation *float64 `json:"precipitation"`
	WindMax       *float64 `json:"wind_max"`
	IsHeatwave    bool     `json:"is_heatwave"`
}

// ChartsView carries the series behind the temperature/precipitation/wind
// chart tabs. Tab choice is client-side state; all series ship together.
type ChartsView struct {
	Available bool          `json:"available"`
	Tabs      []string      `json:"tabs"`
	Hourly    []HourlyPoint `json:"hourly"`
	Daily     []DailyPoint  `json:"daily"`
}

// BuildCharts prepares the hourly window and forecast days for charting.
func BuildCharts(hourly []domain.WeatherSample, forecast []domain.DailyAggregate) ChartsView {
	v := ChartsView{
		Tabs: []string{"temperature", "precipitation", "wind"},
	}

	for _, h := range hourly {
		v.Hourly = append(v.Hourly, HourlyPoint{
			Time:          h.RecordedAt.Format("03 PM"),
			Temperature:   h.Temperature2m,
			FeelsLike:     h.ApparentTemperature,
			Humidity:      h.RelativeHumidity2m,
			Precipitation: h.Precipitation,
			Wind:          h.WindSpeed10m,
			Gusts:         h.WindGusts10m,
			IsForecast:    h.IsForecast,
		})
	}

	for _, d := range forecast {
		v.Daily = append(v.Daily, DailyPoint{
			Date:          dayLabel(d.Date),
			TempMax:       d.TempMax,
			TempMin:       d.TempMin,
			Precipitation: d.PrecipitationSum,
			WindMax:       d.WindSpeedMax,
			IsHeatwave:    d.IsHeatwave,
		})
	}

	v.Available = len(v.Hourly) > 0 || len(v.Daily) > 0
	return v
}

func dayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon 2")
}
