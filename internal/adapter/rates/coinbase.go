package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const coinbaseRatesURL = "https://api.coinbase.com/v2/exchange-rates?currency=BTC"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CoinbaseClient implements ports.RateProvider using Coinbase's public
// exchange-rates endpoint. Rates are currency units per BTC.
type CoinbaseClient struct {
	url        string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewCoinbaseClient creates a Coinbase rate provider.
func NewCoinbaseClient(log zerolog.Logger) *CoinbaseClient {
	return &CoinbaseClient{
		url:        coinbaseRatesURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		log:        log,
	}
}

// NewCoinbaseClientWithHTTP creates a rate provider with a custom HTTP
// client and URL, for tests.
func NewCoinbaseClientWithHTTP(url string, httpClient HTTPClient, log zerolog.Logger) *CoinbaseClient {
	return &CoinbaseClient{url: url, httpClient: httpClient, log: log}
}

type ratesResponse struct {
	Data struct {
		Currency string            `json:"currency"`
		Rates    map[string]string `json:"rates"`
	} `json:"data"`
}

// Rates fetches the current BTC exchange rates.
func (c *CoinbaseClient) Rates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates endpoint returned %d", resp.StatusCode)
	}

	var parsed ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	if len(parsed.Data.Rates) == 0 {
		return nil, fmt.Errorf("rates response was empty")
	}

	rates := make(map[string]float64, len(parsed.Data.Rates))
	for code, raw := range parsed.Data.Rates {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.log.Debug().Str("code", code).Str("raw", raw).Msg("skipping unparsable rate")
			continue
		}
		rates[code] = rate
	}
	return rates, nil
}
