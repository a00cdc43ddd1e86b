// Package upstream provides the single outbound HTTP call the gateway makes
// per adapted request: a JSON POST to a supplier endpoint with a bounded
// timeout and per-supplier rate limiting.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/sajidmahamud835/ota-proxy/internal/domain"
	"github.com/sajidmahamud835/ota-proxy/internal/infrastructure/logger"
)

// Caller is the interface the orchestrator consumes; it exists so tests can
// substitute a call-counting spy.
type Caller interface {
	// Call POSTs the mapped request and returns the raw response body.
	Call(ctx context.Context, supplier string, req *domain.UpstreamRequest) ([]byte, error)
}

// Config holds the outbound call settings.
type Config struct {
	// Timeout bounds each supplier call so a hung upstream cannot hold
	// the handling context indefinitely.
	Timeout time.Duration

	// RequestsPerSecond and Burst configure the per-supplier limiter.
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns the default outbound call settings.
func DefaultConfig() Config {
	return Config{
		Timeout:           15 * time.Second,
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// Client is the production Caller backed by net/http.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	log        zerolog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewClient creates a Client with the given settings.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig().RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultConfig().Burst
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		timeout:    cfg.Timeout,
		log:        log,
		limiters:   make(map[string]*rate.Limiter),
		rps:        cfg.RequestsPerSecond,
		burst:      cfg.Burst,
	}
}

// Call POSTs the mapped request as JSON and returns the raw body. Network
// failures, timeouts and non-2xx statuses all come back as errors; the
// orchestrator treats them uniformly as upstream failures.
func (c *Client) Call(ctx context.Context, supplier string, req *domain.UpstreamRequest) ([]byte, error) {
	if err := c.limiter(supplier).Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	callLog := logger.WithSupplier(c.log, supplier)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		callLog.Warn().Err(err).Msg("Upstream call failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	callLog.Info().
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Int("bytes", len(body)).
		Msg("Upstream call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return body, nil
}

// limiter returns the rate limiter for a supplier, creating it on first use.
func (c *Client) limiter(supplier string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[supplier]
	if !ok {
		l = rate.NewLimiter(rate.Limit(c.rps), c.burst)
		c.limiters[supplier] = l
	}
	return l
}
