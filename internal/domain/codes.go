package domain

// WeatherCodeInfo is the display mapping for an Open-Meteo WMO weather code.
type WeatherCodeInfo struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// weatherCodes covers the subset of WMO codes the backend pipeline emits.
var weatherCodes = map[int]WeatherCodeInfo{
	0:  {Description: "Clear sky", Icon: "clear"},
	1:  {Description: "Mainly clear", Icon: "mostly-clear"},
	2:  {Description: "Partly cloudy", Icon: "partly-cloudy"},
	3:  {Description: "Overcast", Icon: "overcast"},
	45: {Description: "Foggy", Icon: "fog"},
	48: {Description: "Rime fog", Icon: "fog"},
	51: {Description: "Light drizzle", Icon: "drizzle"},
	53: {Description: "Moderate drizzle", Icon: "drizzle"},
	55: {Description: "Dense drizzle", Icon: "rain"},
	61: {Description: "Slight rain", Icon: "drizzle"},
	63: {Description: "Moderate rain", Icon: "rain"},
	65: {Description: "Heavy rain", Icon: "rain"},
	80: {Description: "Rain showers", Icon: "drizzle"},
	81: {Description: "Moderate showers", Icon: "rain"},
	82: {Description: "Violent showers", Icon: "storm"},
	95: {Description: "Thunderstorm", Icon: "storm"},
	96: {Description: "Thunderstorm + hail", Icon: "storm"},
	99: {Description: "Thunderstorm + heavy hail", Icon: "storm"},
}

// WeatherCodeLookup resolves a weather code to its display mapping.
// Unknown or absent codes fall back to a generic entry.
func WeatherCodeLookup(code *int) WeatherCodeInfo {
	if code != nil {
		if info, ok := weatherCodes[*code]; ok {
			return info
		}
	}
	return WeatherCodeInfo{Description: "Unknown", Icon: "thermometer"}
}
