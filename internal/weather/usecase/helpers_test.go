package usecase_test

import (
	"context"

	"travel-planner/pkg/openmeteo"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock geocoder with injectable behavior and a call counter.
type mockGeocoder struct {
	searchFunc func(name string) ([]openmeteo.Location, error)
	calls      int
}

func (m *mockGeocoder) Search(ctx context.Context, name string) ([]openmeteo.Location, error) {
	m.calls++
	if m.searchFunc != nil {
		return m.searchFunc(name)
	}
	return nil, nil
}

// Mock forecaster with injectable behavior and a call counter.
type mockForecaster struct {
	forecastFunc func(latitude, longitude float64, timezone string) (openmeteo.Daily, error)
	calls        int
}

func (m *mockForecaster) DailyForecast(ctx context.Context, latitude, longitude float64, timezone string) (openmeteo.Daily, error) {
	m.calls++
	if m.forecastFunc != nil {
		return m.forecastFunc(latitude, longitude, timezone)
	}
	return openmeteo.Daily{}, nil
}

var londonLocation = openmeteo.Location{
	Name:        "London",
	CountryCode: "GB",
	Latitude:    51.50853,
	Longitude:   -0.12574,
	Timezone:    "Europe/London",
}

func londonDaily() openmeteo.Daily {
	return openmeteo.Daily{
		Time:           []string{"2026-08-31", "2026-09-01", "2026-09-02"},
		WeatherCode:    []int{0, 95, 42},
		TemperatureMax: []float64{21.4, 19.0, 17.6},
		TemperatureMin: []float64{12.1, 11.3, 10.8},
	}
}
