package cvrdex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 35 * time.Second

const apiKeyHeader = "X-API-Key"

// Client talks to a remote cvrdex deployment. It is immutable and safe
// for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the deployment at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.apiKey,
		httpClient: httpClient,
	}
}

// Lookup fetches one company by its CVR number.
func (c *Client) Lookup(ctx context.Context, cvr int) (Company, error) {
	var out Company
	err := c.get(ctx, fmt.Sprintf("/api/v1/%d", cvr), &out)
	return out, err
}

// SearchName lists companies whose registered name starts with the given
// phrase, best match first.
func (c *Client) SearchName(ctx context.Context, name string) ([]Company, error) {
	return c.list(ctx, "/api/v1/search/company/"+url.PathEscape(name))
}

// SearchFuzzyName lists companies whose registered name approximately
// matches the given phrase, tolerating typos.
func (c *Client) SearchFuzzyName(ctx context.Context, name string) ([]Company, error) {
	return c.list(ctx, "/api/v1/fuzzy_search/company/"+url.PathEscape(name))
}

// SearchEmail lists companies registered with the given email address.
func (c *Client) SearchEmail(ctx context.Context, email string) ([]Company, error) {
	return c.list(ctx, "/api/v1/email/"+url.PathEscape(email))
}

// SearchEmailDomain lists companies registered with an email address under
// the given domain. Pass the bare domain without a leading @.
func (c *Client) SearchEmailDomain(ctx context.Context, domain string) ([]Company, error) {
	return c.list(ctx, "/api/v1/email_domain/"+url.PathEscape(domain))
}

// SearchPhone lists companies registered with the given phone number.
func (c *Client) SearchPhone(ctx context.Context, phone string) ([]Company, error) {
	return c.list(ctx, "/api/v1/phone/"+url.PathEscape(phone))
}

// Version fetches the deployment's build metadata.
func (c *Client) Version(ctx context.Context) (VersionInfo, error) {
	var out VersionInfo
	err := c.get(ctx, "/api/v1/version", &out)
	return out, err
}

// Health fetches the deployment's health report. A degraded deployment
// answers 503 but still carries a report, so that is not an error here.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := c.newRequest(ctx, "/health")
	if err != nil {
		return HealthStatus{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("cvrdex api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return HealthStatus{}, decodeAPIError(resp)
	}

	var out HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return HealthStatus{}, fmt.Errorf("decode health report: %w", err)
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, path string) ([]Company, error) {
	var out []Company
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	return req, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, path)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cvrdex api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError turns a non-2xx response into an APIError, falling back
// to the HTTP status text when the body is not the error envelope.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil && body.Code != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		return apiErr
	}

	apiErr.Code = "unknown"
	apiErr.Message = http.StatusText(resp.StatusCode)
	return apiErr
}
