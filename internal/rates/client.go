package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mtlprog/patrimoine/internal/domain"
)

// DefaultURL is the exchange-rate endpoint anchored at domain.ReferenceCurrency.
const DefaultURL = "https://api.exchangerate-api.com/v4/latest/EUR"

// ErrNoRates is returned when the response body carries no rates mapping.
var ErrNoRates = errors.New("response has no rates")

// latestResponse is the subset of the endpoint's body we rely on.
type latestResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Client fetches the latest exchange rates from an HTTP JSON endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new rates client. The timeout bounds the whole request.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRates issues a single GET and returns the rates mapping as a table.
func (c *Client) FetchRates(ctx context.Context) (domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading rates response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates HTTP %d: %s", resp.StatusCode, string(body))
	}

	// Parse: {"base":"EUR","rates":{"EUR":1,"AED":4.01,...}}
	var raw latestResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing rates response: %w", err)
	}
	if raw.Rates == nil {
		return nil, ErrNoRates
	}

	table := make(domain.RateTable, len(raw.Rates))
	for code, rate := range raw.Rates {
		table[domain.NormalizeCurrency(code)] = rate
	}
	return table, nil
}
