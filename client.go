package cvrdex

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/cvrdex/internal/config"
	"github.com/kailas-cloud/cvrdex/internal/transport/virk"
	lookupuc "github.com/kailas-cloud/cvrdex/internal/usecase/lookup"
)

// Client is the cvrdex library entry point: company lookups straight
// against the registry index, without running the HTTP API in between.
type Client struct {
	registry *virk.Client
	lookup   *lookupuc.Service
}

// New creates a cvrdex Client. Registry credentials are required; every
// other setting has a working default.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		url:     config.DefaultRegistryURL,
		timeout: virk.DefaultTimeout,
	}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.username == "" || cfg.password == "" {
		return nil, errors.New("cvrdex: registry credentials required (use WithCredentials)")
	}

	registry := virk.NewClient(&virk.Config{
		URL:        cfg.url,
		Username:   cfg.username,
		Password:   cfg.password,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
	})

	return &Client{
		registry: registry,
		lookup:   lookupuc.New(registry),
	}, nil
}

// Ping checks registry connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.registry.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Lookup fetches one company by its CVR number.
func (c *Client) Lookup(ctx context.Context, cvr int) (Company, error) {
	dc, err := c.lookup.ByCVR(ctx, cvr)
	if err != nil {
		return Company{}, err
	}
	return companyFromDomain(dc), nil
}
