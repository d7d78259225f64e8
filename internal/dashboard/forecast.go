package dashboard

import (
	"github.com/rajasthanwx/weather-monitor/internal/derive"
	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// ForecastDay is one row of the 7-day forecast list. Bar positions are
// percentages of the card's shared temperature axis.
type ForecastDay struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	IsToday bool   `json:"is_today"`

	Condition string `json:"condition"`
	Icon      string `json:"icon"`

	TempMin     string  `json:"temp_min"`
	TempMax     string  `json:"temp_max"`
	BarStartPct float64 `json:"bar_start_pct"`
	BarWidthPct float64 `json:"bar_width_pct"`

	Precipitation string `json:"precipitation"`
	HasPrecip     bool   `json:"has_precip"`

	Heatwave      bool `json:"heatwave"`
	DustStormRisk bool `json:"dust_storm_risk"`
	HeavyRain     bool `json:"heavy_rain"`
}

// ForecastView is the 7-day forecast card.
type ForecastView struct {
	Available bool          `json:"available"`
	Days      []ForecastDay `json:"days"`
}

// BuildForecast renders the daily aggregates as temperature-range bars scaled
// against the window's global min/max. Null temperatures are ignored when
// computing the axis; a flat window (all days equal) degrades to zero-width
// bars instead of dividing by zero.
func BuildForecast(forecast []domain.DailyAggregate) ForecastView {
	if len(forecast) == 0 {
		return ForecastView{}
	}

	var (
		globalMin, globalMax float64
		seen                 bool
	)
	for _, d := range forecast {
		for _, t := range []*float64{d.TempMin, d.TempMax} {
			if t == nil {
				continue
			}
			if !seen || *t < globalMin {
				globalMin = *t
			}
			if !seen || *t > globalMax {
				globalMax = *t
			}
			seen = true
		}
	}

	span := globalMax - globalMin
	if span == 0 {
		span = 1
	}

	days := make([]ForecastDay, 0, len(forecast))
	for i, d := range forecast {
		code := domain.WeatherCodeLookup(d.WeatherCode)

		low := globalMin
		if d.TempMin != nil {
			low = *d.TempMin
		}
		high := globalMax
		if d.TempMax != nil {
			high = *d.TempMax
		}
		lowPct := (low - globalMin) / span * 100
		highPct := (high - globalMin) / span * 100

		day := ForecastDay{
			Date:          d.Date,
			Label:         derive.FormatDate(d.Date),
			IsToday:       i == 0,
			Condition:     code.Description,
			Icon:          code.Icon,
			TempMin:       derive.FormatTemp(d.TempMin),
			TempMax:       derive.FormatTemp(d.TempMax),
			BarStartPct:   lowPct,
			BarWidthPct:   highPct - lowPct,
			Heatwave:      d.IsHeatwave,
			DustStormRisk: d.IsDustStormRisk,
			HeavyRain:     d.IsHeavyRain,
		}
		if d.PrecipitationSum != nil && *d.PrecipitationSum > 0 {
			day.HasPrecip = true
			day.Precipitation = derive.FormatPrecip(d.PrecipitationSum)
		} else {
			day.Precipitation = derive.Placeholder
		}
		if i == 0 {
			day.Label = "Today"
		}
		days = append(days, day)
	}

	return ForecastView{Available: true, Days: days}
}
