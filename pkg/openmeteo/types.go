package openmeteo

// Location is a single geocoding candidate.
type Location struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"country_code"` // ISO 3166-1 alpha-2, e.g. "GB"
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"` // IANA name, e.g. "Europe/London"
}

// geocodeResponse is the body of GET /v1/search. The results key is absent
// entirely when nothing matched.
type geocodeResponse struct {
	Results []Location `json:"results"`
}

// Daily holds the parallel per-day forecast series. All slices are
// index-aligned and of equal length; index 0 is the current day.
type Daily struct {
	Time           []string  `json:"time"` // dates as YYYY-MM-DD
	WeatherCode    []int     `json:"weathercode"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
}

// Len returns the number of forecast days.
func (d Daily) Len() int { return len(d.Time) }

// aligned reports whether every series has the same length.
func (d Daily) aligned() bool {
	n := len(d.Time)
	return len(d.WeatherCode) == n && len(d.TemperatureMax) == n && len(d.TemperatureMin) == n
}

// forecastResponse is the body of GET /v1/forecast.
type forecastResponse struct {
	Daily Daily `json:"daily"`
}
