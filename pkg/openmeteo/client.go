package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the Open-Meteo geocoding and forecast services.
// Both are public read-only JSON APIs without authentication.
type Client struct {
	geocodingBaseURL string
	forecastBaseURL  string
	httpClient       *http.Client
}

var (
	_ Geocoder   = (*Client)(nil)
	_ Forecaster = (*Client)(nil)
)

// NewClient creates a new Open-Meteo client. A non-positive timeout falls
// back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		geocodingBaseURL: DefaultGeocodingBaseURL,
		forecastBaseURL:  DefaultForecastBaseURL,
		httpClient:       &http.Client{Timeout: timeout},
	}
}

// WithGeocodingBaseURL overrides the geocoding service base URL.
func (c *Client) WithGeocodingBaseURL(baseURL string) *Client {
	c.geocodingBaseURL = baseURL
	return c
}

// WithForecastBaseURL overrides the forecast service base URL.
func (c *Client) WithForecastBaseURL(baseURL string) *Client {
	c.forecastBaseURL = baseURL
	return c
}

// Search resolves a free-text place name into candidate locations.
// An empty slice means the name matched nothing; callers decide whether
// that is an error.
func (c *Client) Search(ctx context.Context, name string) ([]Location, error) {
	q := url.Values{}
	q.Set("name", name)
	addr := fmt.Sprintf("%s/v1/search?%s", c.geocodingBaseURL, q.Encode())

	var parsed geocodeResponse
	if err := c.getJSON(ctx, addr, &parsed); err != nil {
		return nil, fmt.Errorf("geocoding search %q: %w", name, err)
	}
	return parsed.Results, nil
}

// DailyForecast fetches the daily forecast series for the given coordinates.
func (c *Client) DailyForecast(ctx context.Context, latitude, longitude float64, timezone string) (Daily, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("timezone", timezone)
	q.Set("daily", dailyVariables)
	addr := fmt.Sprintf("%s/v1/forecast?%s", c.forecastBaseURL, q.Encode())

	var parsed forecastResponse
	if err := c.getJSON(ctx, addr, &parsed); err != nil {
		return Daily{}, fmt.Errorf("daily forecast: %w", err)
	}
	if !parsed.Daily.aligned() {
		return Daily{}, fmt.Errorf("daily forecast: misaligned series in response")
	}
	return parsed.Daily, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, addr string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call Open-Meteo API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Open-Meteo API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode Open-Meteo response: %w", err)
	}
	return nil
}
