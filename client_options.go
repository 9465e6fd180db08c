package cvrdex

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	url      string
	username string
	password string
	timeout  time.Duration

	httpClient *http.Client
	logger     *zap.Logger
}

// WithCredentials sets the registry basic auth credentials. Required.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithRegistryURL overrides the registry search endpoint.
// Defaults to the public distribution endpoint.
func WithRegistryURL(url string) Option {
	return func(c *clientConfig) {
		c.url = url
	}
}

// WithTimeout bounds one registry call end to end. Default: 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithHTTPClient overrides the pooled HTTP transport (tests, custom tuning).
// The client's own timeout then applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}
