package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/derive"
	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// MonsoonPoint is one month of the normals-vs-actual comparison series.
type MonsoonPoint struct {
	Month    string  `json:"month"`
	NormalMM float64 `json:"normal_mm"`
	ActualMM float64 `json:"actual_mm"`
}

// RainBar is one day of the rainfall-forecast breakdown.
type RainBar struct {
	Label     string  `json:"label"`
	MM        float64 `json:"mm"`
	HeightPct float64 `json:"height_pct"`
}

// MonsoonView is the monsoon tracker card. Available is false when the city
// has no historical normals on record, in which case the comparison series is
// omitted entirely rather than rendered against a zero baseline.
type MonsoonView struct {
	Available bool   `json:"available"`
	CityName  string `json:"city_name"`

	CumulativeForecastMM float64 `json:"cumulative_forecast_mm"`
	SeasonNormalMM       float64 `json:"season_normal_mm,omitempty"`
	InSeason             bool    `json:"in_season"`
	CurrentMonth         string  `json:"current_month"`
	PercentOfNormal      string  `json:"percent_of_normal"`

	Series   []MonsoonPoint `json:"series,omitempty"`
	RainBars []RainBar      `json:"rain_bars,omitempty"`
	HasRain  bool           `json:"has_rain"`
}

// BuildMonsoon compares the forecast window's cumulative rainfall against the
// city's historical monthly normals. Only the current month carries the live
// datapoint; the remaining months chart at zero. That lines a partial-month
// forecast up against full-month normals, a deliberate simplification kept
// from the source behavior.
func BuildMonsoon(forecast []domain.DailyAggregate, cityName string, now time.Time) MonsoonView {
	var cumulative float64
	for _, d := range forecast {
		if d.PrecipitationSum != nil {
			cumulative += *d.PrecipitationSum
		}
	}

	currentMonth := now.Month().String()
	inSeason := false
	for _, m := range domain.MonsoonMonths {
		if m == currentMonth {
			inSeason = true
			break
		}
	}

	v := MonsoonView{
		CityName:             cityName,
		CumulativeForecastMM: round1(cumulative),
		CurrentMonth:         currentMonth,
		InSeason:             inSeason,
		PercentOfNormal:      derive.Placeholder,
	}

	normals, ok := domain.NormalsFor(cityName)
	if ok {
		v.Available = true
		v.SeasonNormalMM = normals.Total

		v.Series = make([]MonsoonPoint, 0, len(domain.MonsoonMonths))
		for _, m := range domain.MonsoonMonths {
			p := MonsoonPoint{Month: m, NormalMM: normals.ForMonth(m)}
			if m == currentMonth {
				p.ActualMM = round1(cumulative)
			}
			v.Series = append(v.Series, p)
		}

		if inSeason {
			normal := normals.ForMonth(currentMonth)
			if normal == 0 {
				normal = 1
			}
			v.PercentOfNormal = fmt.Sprintf("%.0f%%", cumulative/normal*100)
		}
	}

	// Daily rainfall breakdown, scaled to the wettest forecast day.
	maxRain := 1.0
	for _, d := range forecast {
		if d.PrecipitationSum != nil && *d.PrecipitationSum > maxRain {
			maxRain = *d.PrecipitationSum
		}
	}
	for _, d := range forecast {
		var mm float64
		if d.PrecipitationSum != nil {
			mm = *d.PrecipitationSum
		}
		if mm > 0 {
			v.HasRain = true
		}
		v.RainBars = append(v.RainBars, RainBar{
			Label:     weekdayLabel(d.Date),
			MM:        round1(mm),
			HeightPct: mm / maxRain * 100,
		})
	}

	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func weekdayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon")
}
