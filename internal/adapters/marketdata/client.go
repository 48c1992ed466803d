package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.alphavantage.co"

	// Alpha Vantage free tier: 5 requests per minute. One token every 13s
	// leaves headroom for clock skew on their side.
	requestInterval = 13 * time.Second

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Client is the Alpha Vantage HTTP client with rate limiting and retries.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// NewClient creates a Client for the given base URL and API key. An empty
// base URL means production.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
	}
}

// FetchDaily downloads the full daily close series for a symbol.
func (c *Client) FetchDaily(ctx context.Context, symbol string) (dailyResponse, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "/query?" + q.Encode()

	var resp dailyResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return dailyResponse{}, fmt.Errorf("marketdata.FetchDaily: %s: %w", symbol, err)
	}

	if len(resp.TimeSeries) == 0 {
		// The API reports quota and bad-symbol errors inside a 200 body.
		return dailyResponse{}, fmt.Errorf("marketdata.FetchDaily: %s: empty time series (note=%q, err=%q)",
			symbol, resp.Note, resp.ErrorMessage)
	}

	return resp, nil
}

// get does a GET with rate limiting and exponential backoff retries.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				return fmt.Errorf("status %d after %d retries", resp.StatusCode, maxRetries)
			}
			slog.Warn("market data API backing off", "status", resp.StatusCode, "attempt", attempt+1)
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return nil
}

func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := baseRetryWait * time.Duration(1<<attempt)
	select {
	case <-ctx.Done():
	case <-time.After(wait):
	}
}
