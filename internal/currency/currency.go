// Package currency fetches USD conversion rates from the Frankfurter API
// (free, no API key; rates update daily around 16:00 CET).
//
// This is a presentation collaborator: cost and score computation never
// depend on it, and any fetch failure leaves callers displaying the
// unconverted USD value.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the Frankfurter API root.
const DefaultBaseURL = "https://api.frankfurter.dev/v1"

// cacheTTL bounds how long fetched rates are reused.
const cacheTTL = 60 * time.Minute

// TargetCurrencies are the conversion targets offered alongside USD.
var TargetCurrencies = []string{"EUR", "GBP", "CHF", "CAD", "AUD", "JPY"}

// Labels maps supported currency codes to display names.
var Labels = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"CHF": "Swiss Franc",
	"CAD": "Canadian Dollar",
	"AUD": "Australian Dollar",
	"JPY": "Japanese Yen",
}

type apiResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Converter fetches and caches USD conversion rates.
type Converter struct {
	baseURL string
	client  *http.Client
	now     func() time.Time

	mu        sync.Mutex
	rates     map[string]float64
	ratesDate string
	fetchedAt time.Time
}

// Option customizes a Converter.
type Option func(*Converter)

// WithBaseURL overrides the API root (used in tests).
func WithBaseURL(url string) Option {
	return func(c *Converter) { c.baseURL = url }
}

// WithClock overrides the time source (used in tests).
func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rates returns USD-based conversion rates for the target currencies,
// including USD itself at 1. Cached results are served for up to an hour;
// a network or decode failure returns an error and callers fall back to
// USD display.
func (c *Converter) Rates(ctx context.Context) (map[string]float64, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates != nil && c.now().Sub(c.fetchedAt) < cacheTTL {
		return c.rates, c.ratesDate, nil
	}

	url := fmt.Sprintf("%s/latest?base=USD&symbols=%s", c.baseURL, strings.Join(TargetCurrencies, ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch rates: status %d", resp.StatusCode)
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, "", fmt.Errorf("failed to decode rates: %w", err)
	}

	rates := map[string]float64{"USD": 1}
	for code, rate := range data.Rates {
		rates[code] = rate
	}

	c.rates = rates
	c.ratesDate = data.Date
	c.fetchedAt = c.now()
	return rates, data.Date, nil
}

// Convert applies a fetched rate to a USD amount.
func Convert(usdAmount float64, rates map[string]float64, code string) (float64, bool) {
	rate, ok := rates[code]
	if !ok {
		return 0, false
	}
	return usdAmount * rate, true
}
