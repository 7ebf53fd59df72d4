package openmeteo

import "context"

// Geocoder resolves free-text place names into candidate locations.
// Implementations are safe for concurrent use.
type Geocoder interface {
	Search(ctx context.Context, name string) ([]Location, error)
}

// Forecaster fetches the daily forecast for resolved coordinates.
// Implementations are safe for concurrent use.
type Forecaster interface {
	DailyForecast(ctx context.Context, latitude, longitude float64, timezone string) (Daily, error)
}
