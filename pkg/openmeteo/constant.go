package openmeteo

import "time"

const (
	// DefaultGeocodingBaseURL is the public Open-Meteo geocoding service.
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"
	// DefaultForecastBaseURL is the public Open-Meteo forecast service.
	DefaultForecastBaseURL = "https://api.open-meteo.com"

	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 10 * time.Second

	// dailyVariables is the fixed set of daily series the planner consumes.
	dailyVariables = "weathercode,temperature_2m_max,temperature_2m_min"
)
