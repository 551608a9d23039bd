// Package httpx provides the shared upstream HTTP client every provider
// adapter uses: a 30-second request timeout (spec.md §5), exponential
// backoff on transient failures, and an optional rate limiter so a burst of
// concurrent cache misses doesn't hammer the upstream hosts. The limiter
// belongs to the Client, so every adapter sharing one Client shares one
// request budget.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// RequestTimeout is the fixed upstream request timeout applied to every
// adapter fetch.
const RequestTimeout = 30 * time.Second

// Client wraps an *http.Client with retry and rate-limiting policy common to
// every provider adapter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	retries uint64
}

// Option configures a Client.
type Option func(*Client)

// WithRateLimit caps sustained requests per second with a small burst,
// protecting upstreams (especially scraped HTML sites) from concurrent
// single-flight misses turning into a thundering herd.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithMaxRetries overrides the default retry count for transient failures.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.retries = n }
}

// New constructs a Client with the standard 30-second timeout.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: RequestTimeout},
		retries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetBytes issues a GET request, retrying transient (5xx, network) failures
// with exponential backoff, and returns the response body. A non-2xx final
// status is reported as an error carrying the status code.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= 500 {
			return fmt.Errorf("httpx: upstream status %d for %s", resp.StatusCode, url)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("httpx: upstream status %d for %s", resp.StatusCode, url))
		}

		body = data
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}
