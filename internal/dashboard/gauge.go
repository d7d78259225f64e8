package dashboard

import (
	"fmt"
	"math"

	"github.com/rajasthanwx/weather-monitor/internal/derive"
	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// Display caps (µg/m³) for the pollutant bars; readings at or above the cap
// fill the bar completely.
const (
	pm25BarCap  = 250.0
	pm10BarCap  = 500.0
	dustBarCap  = 500.0
	ozoneBarCap = 300.0
)

// PollutantBar is one row of the gauge card's pollutant breakdown.
type PollutantBar struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Percent    float64 `json:"percent"`
	ColorToken string  `json:"color"`
}

// GaugeView is the semicircular AQI gauge: needle position, category band,
// pollutant bars, and the health advice line.
type GaugeView struct {
	Available  bool                `json:"available"`
	Value      string              `json:"value"`
	NeedleDeg  float64             `json:"needle_deg"`
	Category   derive.CategoryInfo `json:"category"`
	Pollutants []PollutantBar      `json:"pollutants"`
	EUAQI      string              `json:"eu_aqi,omitempty"`
}

// BuildGauge renders the AQI gauge from the latest air-quality sample.
// The 0-500 AQI scale maps onto the gauge's 180-degree sweep.
func BuildGauge(aqi *domain.AirQualitySample) GaugeView {
	if aqi == nil {
		return GaugeView{
			Value:    derive.Placeholder,
			Category: derive.AQICategory(nil),
		}
	}

	v := GaugeView{
		Available: true,
		Value:     derive.Placeholder,
		Category:  derive.AQICategory(aqi.USAQI),
	}

	if aqi.USAQI != nil {
		v.Value = fmt.Sprintf("%d", int(math.Round(*aqi.USAQI)))
		v.NeedleDeg = math.Min(*aqi.USAQI/500*180, 180)
	}

	v.Pollutants = []PollutantBar{
		{
			Name:       "PM2.5",
			Value:      derive.FormatConcentration(aqi.PM25),
			Percent:    barPercent(aqi.PM25, pm25BarCap),
			ColorToken: derive.AQICategory(aqi.USAQIPM25).ColorToken,
		},
		{
			Name:       "PM10",
			Value:      derive.FormatConcentration(aqi.PM10),
			Percent:    barPercent(aqi.PM10, pm10BarCap),
			ColorToken: derive.AQICategory(aqi.USAQIPM10).ColorToken,
		},
		{
			Name:       "Dust",
			Value:      derive.FormatConcentration(aqi.Dust),
			Percent:    barPercent(aqi.Dust, dustBarCap),
			ColorToken: "pollutant-dust",
		},
		{
			Name:       "Ozone",
			Value:      derive.FormatConcentration(aqi.Ozone),
			Percent:    barPercent(aqi.Ozone, ozoneBarCap),
			ColorToken: "pollutant-ozone",
		},
	}

	if aqi.EuropeanAQI != nil {
		v.EUAQI = fmt.Sprintf("%d", int(math.Round(*aqi.EuropeanAQI)))
	}
	return v
}

func barPercent(value *float64, limit float64) float64 {
	if value == nil {
		return 0
	}
	return math.Min(*value/limit*100, 100)
}
