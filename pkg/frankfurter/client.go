package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public Frankfurter exchange-rate service.
	DefaultBaseURL = "https://api.frankfurter.app"

	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 10 * time.Second
)

// Client is the Frankfurter exchange-rate API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Converter = (*Client)(nil)

// NewClient creates a new Frankfurter client. A non-positive timeout falls
// back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the default Frankfurter base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Convert asks the service to convert amount from one currency to another.
// The service applies the amount itself; Rates holds converted totals.
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (ConversionResult, error) {
	q := url.Values{}
	q.Set("amount", amount.String())
	q.Set("from", from)
	q.Set("to", to)
	addr := fmt.Sprintf("%s/latest?%s", c.baseURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return ConversionResult{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ConversionResult{}, fmt.Errorf("failed to call Frankfurter API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ConversionResult{}, fmt.Errorf("Frankfurter API returned status: %d", resp.StatusCode)
	}

	var parsed ConversionResult
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ConversionResult{}, fmt.Errorf("failed to decode Frankfurter response: %w", err)
	}
	return parsed, nil
}
