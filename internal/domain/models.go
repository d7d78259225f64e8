package domain

import (
	"time"
)

// Severity is the ordered alert severity scale produced by the backend pipeline.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityExtreme  Severity = "extreme"
)

// City is a tracked location. Rows are produced by the external seed or the
// add-city form; immutable afterwards except the activation flag, which the
// backend pipeline owns.
type City struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	State      string   `json:"state"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	ElevationM *float64 `json:"elevation_m"`
	IsDefault  bool     `json:"is_default"`
	IsActive   bool     `json:"is_active"`
}

// NewCity is the insert payload for a user-added city.
// State is always the fixed "Rajasthan" constant; the datastore fills
// defaults for the flags.
type NewCity struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	State      string   `json:"state"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	ElevationM *float64 `json:"elevation_m"`
	IsDefault  bool     `json:"is_default"`
	IsActive   bool     `json:"is_active"`
}

// WeatherSample is one hourly weather row for a city, observed or forecast.
// Nullable datastore columns are pointers; absent readings render as "--"
// downstream rather than zero.
type WeatherSample struct {
	ID                       string    `json:"id"`
	CityID                   string    `json:"city_id"`
	RecordedAt               time.Time `json:"recorded_at"`
	Temperature2m            *float64  `json:"temperature_2m"`
	ApparentTemperature      *float64  `json:"apparent_temperature"`
	RelativeHumidity2m       *float64  `json:"relative_humidity_2m"`
	Dewpoint2m               *float64  `json:"dewpoint_2m"`
	Precipitation            float64   `json:"precipitation"`
	PrecipitationProbability *float64  `json:"precipitation_probability"`
	Rain                     float64   `json:"rain"`
	WindSpeed10m             *float64  `json:"wind_speed_10m"`
	WindDirection10m         *float64  `json:"wind_direction_10m"`
	WindGusts10m             *float64  `json:"wind_gusts_10m"`
	WeatherCode              *int      `json:"weather_code"`
	CloudCover               *float64  `json:"cloud_cover"`
	Visibility               *float64  `json:"visibility"`
	SurfacePressure          *float64  `json:"surface_pressure"`
	UVIndex                  *float64  `json:"uv_index"`
	IsForecast               bool      `json:"is_forecast"`
}

// AirQualitySample is one air-quality row for a city with pollutant
// concentrations and the derived US/EU indices.
type AirQualitySample struct {
	ID              string    `json:"id"`
	CityID          string    `json:"city_id"`
	RecordedAt      time.Time `json:"recorded_at"`
	PM25            *float64  `json:"pm2_5"`
	PM10            *float64  `json:"pm10"`
	Dust            *float64  `json:"dust"`
	CarbonMonoxide  *float64  `json:"carbon_monoxide"`
	NitrogenDioxide *float64  `json:"nitrogen_dioxide"`
	SulphurDioxide  *float64  `json:"sulphur_dioxide"`
	Ozone           *float64  `json:"ozone"`
	USAQI           *float64  `json:"us_aqi"`
	EuropeanAQI     *float64  `json:"european_aqi"`
	USAQIPM25       *float64  `json:"us_aqi_pm2_5"`
	USAQIPM10       *float64  `json:"us_aqi_pm10"`
}

// DailyAggregate condenses one calendar day's hourly samples for a city.
type DailyAggregate struct {
	ID                       string   `json:"id"`
	CityID                   string   `json:"city_id"`
	Date                     string   `json:"date"`
	TempMax                  *float64 `json:"temp_max"`
	TempMin                  *float64 `json:"temp_min"`
	TempMean                 *float64 `json:"temp_mean"`
	ApparentTempMax          *float64 `json:"apparent_temp_max"`
	ApparentTempMin          *float64 `json:"apparent_temp_min"`
	PrecipitationSum         *float64 `json:"precipitation_sum"`
	PrecipitationHours       *float64 `json:"precipitation_hours"`
	RainSum                  *float64 `json:"rain_sum"`
	PrecipitationProbability *float64 `json:"precipitation_probability_max"`
	WindSpeedMax             *float64 `json:"wind_speed_max"`
	WindGustsMax             *float64 `json:"wind_gusts_max"`
	WindDirectionDominant    *float64 `json:"wind_direction_dominant"`
	WeatherCode              *int     `json:"weather_code"`
	Sunrise                  *string  `json:"sunrise"`
	Sunset                   *string  `json:"sunset"`
	UVIndexMax               *float64 `json:"uv_index_max"`
	AQIMean                  *float64 `json:"aqi_mean"`
	AQIMax                   *float64 `json:"aqi_max"`
	PM25Mean                 *float64 `json:"pm2_5_mean"`
	PM10Mean                 *float64 `json:"pm10_mean"`
	DustMean                 *float64 `json:"dust_mean"`
	IsHeatwave               bool     `json:"is_heatwave"`
	IsDustStormRisk          bool     `json:"is_dust_storm_risk"`
	IsHeavyRain              bool     `json:"is_heavy_rain"`
}

// Alert is a pipeline-raised advisory for a city. Activation is toggled
// externally; read-only here.
type Alert struct {
	ID          string     `json:"id"`
	CityID      string     `json:"city_id"`
	AlertType   string     `json:"alert_type"`
	Severity    Severity   `json:"severity"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Value       *float64   `json:"value"`
	Threshold   *float64   `json:"threshold"`
	StartsAt    time.Time  `json:"starts_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	IsActive    bool       `json:"is_active"`
	CityName    string     `json:"city_name,omitempty"`
}

// DataStatus reports freshness of the latest pipeline rows.
type DataStatus struct {
	LatestWeather *time.Time `json:"latest_weather"`
	LatestAQI     *time.Time `json:"latest_aqi"`
	ActiveAlerts  int        `json:"active_alerts"`
}
