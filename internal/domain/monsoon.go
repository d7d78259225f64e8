package domain

// MonsoonNormals holds historical average rainfall (mm) per monsoon month for
// a city, used as the comparison baseline on the monsoon tracker.
type MonsoonNormals struct {
	June      float64
	July      float64
	August    float64
	September float64
	Total     float64
}

// MonsoonMonths is the fixed monsoon-season calendar pattern, in order.
var MonsoonMonths = []string{"June", "July", "August", "September"}

// monsoonNormals are IMD long-period averages for the cities we have records
// for. Cities outside this table render the tracker as unavailable.
var monsoonNormals = map[string]MonsoonNormals{
	"Jaipur":  {June: 54, July: 193, August: 182, September: 90, Total: 519},
	"Jodhpur": {June: 26, July: 103, August: 114, September: 48, Total: 291},
	"Udaipur": {June: 67, July: 228, August: 221, September: 108, Total: 624},
	"Bikaner": {June: 15, July: 72, August: 78, September: 30, Total: 195},
	"Ajmer":   {June: 43, July: 163, August: 154, September: 68, Total: 428},
	"Kota":    {June: 52, July: 215, August: 198, September: 102, Total: 567},
}

// NormalsFor returns the historical monsoon normals for a city, if recorded.
func NormalsFor(cityName string) (MonsoonNormals, bool) {
	n, ok := monsoonNormals[cityName]
	return n, ok
}

// ForMonth returns the normal rainfall for one of the monsoon months.
// Months outside the season return 0.
func (n MonsoonNormals) ForMonth(month string) float64 {
	switch month {
	case "June":
		return n.June
	case "July":
		return n.July
	case "August":
		return n.August
	case "September":
		return n.September
	}
	return 0
}
