package dashboard

import (
	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

// Tip is one health advisory derived from current AQI and weather readings.
type Tip struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ColorToken  string `json:"color"`
}

// BuildHealthTips derives the advisory list from the latest readings.
// Thresholds follow the regional advisories: AQI bands, Thar-dust levels,
// heat, UV, and humidity. With nothing exceeded, a single all-clear tip
// renders.
func BuildHealthTips(aqi *domain.AirQualitySample, w *domain.WeatherSample) []Tip {
	var tips []Tip

	if aqi != nil && aqi.USAQI != nil {
		v := *aqi.USAQI
		if v > 150 {
			tips = append(tips, Tip{
				Icon:        "mask",
				Title:       "Wear a Mask",
				Description: "Use N95 masks when going outdoors. AQI is in the unhealthy range.",
				ColorToken:  "tip-danger",
			})
		}
		if v > 100 {
			tips = append(tips, Tip{
				Icon:        "no-exercise",
				Title:       "Limit Outdoor Exercise",
				Description: "Reduce prolonged outdoor exertion, especially for children and elderly.",
				ColorToken:  "tip-warning",
			})
		}
		if v > 200 {
			tips = append(tips, Tip{
				Icon:        "home",
				Title:       "Stay Indoors",
				Description: "Keep windows closed. Use air purifiers if available.",
				ColorToken:  "tip-critical",
			})
		}
	}

	if aqi != nil && aqi.Dust != nil && *aqi.Dust > 100 {
		tips = append(tips, Tip{
			Icon:        "desert",
			Title:       "Thar Desert Dust",
			Description: "High dust levels detected. Cover your face outdoors. Protect eyes from sand particles.",
			ColorToken:  "tip-dust",
		})
	}

	if w != nil && w.Temperature2m != nil {
		t := *w.Temperature2m
		if t > 42 {
			tips = append(tips, Tip{
				Icon:        "drink",
				Title:       "Stay Hydrated",
				Description: "Drink water every 15-20 minutes. Avoid caffeine and alcohol. Carry ORS packets.",
				ColorToken:  "tip-critical",
			}, Tip{
				Icon:        "shade",
				Title:       "Avoid Sun Exposure",
				Description: "Stay indoors between 11 AM - 4 PM. If outside, use umbrella and wet cloth on head.",
				ColorToken:  "tip-warning",
			})
		} else if t > 38 {
			tips = append(tips, Tip{
				Icon:        "sunscreen",
				Title:       "Sun Protection",
				Description: "Apply SPF 30+ sunscreen. Wear light-colored, loose cotton clothes.",
				ColorToken:  "tip-caution",
			})
		}
	}

	if w != nil && w.UVIndex != nil && *w.UVIndex > 8 {
		tips = append(tips, Tip{
			Icon:        "sunglasses",
			Title:       "UV Protection",
			Description: "Wear UV-protective sunglasses. UV index is very high, sunburn possible in minutes.",
			ColorToken:  "tip-uv",
		})
	}

	if w != nil && w.RelativeHumidity2m != nil && *w.RelativeHumidity2m > 80 {
		tips = append(tips, Tip{
			Icon:        "humidity",
			Title:       "High Humidity",
			Description: "Muggy conditions expected. Stay in ventilated areas. Watch for heat exhaustion.",
			ColorToken:  "tip-info",
		})
	}

	if len(tips) == 0 {
		tips = append(tips, Tip{
			Icon:        "check",
			Title:       "Conditions are Good",
			Description: "Weather and air quality are within safe limits. Enjoy your day outdoors!",
			ColorToken:  "tip-ok",
		})
	}

	return tips
}
