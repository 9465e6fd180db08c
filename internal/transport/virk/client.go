package virk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cvrdex/internal/domain"
	"github.com/kailas-cloud/cvrdex/internal/domain/search"
	"github.com/kailas-cloud/cvrdex/internal/metrics"
)

// DefaultTimeout bounds one registry call end to end.
const DefaultTimeout = 30 * time.Second

// Client talks to the company registry search index over its JSON query
// dialect. One Client is built at startup and shared; it is immutable and
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	username   string
	password   string
	logger     *zap.Logger
}

// Config holds the registry connection settings.
type Config struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
	// HTTPClient overrides the default pooled transport (tests, custom tuning).
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient creates a registry client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     30 * time.Second,
			},
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: httpClient,
		url:        cfg.URL,
		username:   cfg.Username,
		password:   cfg.Password,
		logger:     logger,
	}
}

// Search executes one query and decodes the response envelope.
// Errors are classified into the domain sentinels: transport failures are
// ErrUnavailable, a 404 is ErrNotFound, any other non-2xx status or an
// undecodable body is ErrBackend. No retry is attempted.
func (c *Client) Search(ctx context.Context, q *search.Query) (search.Result, error) {
	mode := string(q.Kind())

	body, err := encodeQuery(q)
	if err != nil {
		return search.Result{}, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return search.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RegistryRequestsTotal.WithLabelValues(mode, "unavailable").Inc()
		return search.Result{}, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.RegistryRequestsTotal.WithLabelValues(mode, "not_found").Inc()
		return search.Result{}, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RegistryRequestsTotal.WithLabelValues(mode, "backend_error").Inc()
		return search.Result{}, fmt.Errorf("%w: status %d: %s",
			domain.ErrBackend, resp.StatusCode, errorDetail(resp))
	}

	res, err := decodeResponse(resp.Body)
	if err != nil {
		metrics.RegistryRequestsTotal.WithLabelValues(mode, "backend_error").Inc()
		return search.Result{}, fmt.Errorf("%w: %w", domain.ErrBackend, err)
	}

	duration := time.Since(start)
	metrics.RegistryRequestsTotal.WithLabelValues(mode, "ok").Inc()
	metrics.RegistryRequestDuration.WithLabelValues(mode).Observe(duration.Seconds())

	c.logger.Debug("registry search",
		zap.String("kind", mode),
		zap.Int("total", res.Total),
		zap.Int("hits", len(res.Hits)),
		zap.Duration("duration", duration),
	)

	return res, nil
}

// Ping verifies registry reachability with a zero-hit identifier lookup.
func (c *Client) Ping(ctx context.Context) error {
	q := search.NewCVRLookup(0)
	if _, err := c.Search(ctx, &q); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("registry ping: %w", err)
	}
	return nil
}

// errorDetail extracts a short human-readable message from an error response.
func errorDetail(resp *http.Response) string {
	b, err := io.ReadAll(io.LimitReader(resp.Body, 512))
	if err != nil || len(bytes.TrimSpace(b)) == 0 {
		return http.StatusText(resp.StatusCode)
	}
	return strings.TrimSpace(string(b))
}
