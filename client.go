package bento

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/bentonow/bento-go/internal/api"
	"github.com/bentonow/bento-go/internal/apierrors"
)

// Client is the Bento API client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
	config    *Config
	logger    zerolog.Logger
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(cfg *Config, opts *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.BaseURL()),
		api.WithTimeout(cfg.Timeout()),
		api.WithUserAgent(api.UserAgent(Version, cfg.SiteUUID())),
		api.WithLogger(opts.logger),
	}
	if opts.retry != nil {
		apiOpts = append(apiOpts, api.WithRetryConfig(opts.retry))
	}
	if opts.httpClient != nil {
		apiOpts = append(apiOpts, api.WithDoer(opts.httpClient))
	}

	return api.New(api.Credentials{
		PublishableKey: cfg.PublishableKey(),
		SecretKey:      cfg.SecretKey(),
		SiteUUID:       cfg.SiteUUID(),
	}, apiOpts...)
}

// New creates a client for the site described by cfg.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, apierrors.Invalid(ErrInvalidConfig, "config is required")
	}

	o := &clientConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	apiClient, err := buildAPIClient(cfg, o)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		config:    cfg,
		logger:    o.logger,
	}, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *Config {
	return c.config
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	req, err := api.NewRequest(http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.apiClient.Do(ctx, req, result)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, result any) error {
	req, err := api.NewRequest(http.MethodPost, path, query, body)
	if err != nil {
		return err
	}
	return c.apiClient.Do(ctx, req, result)
}

// postBatch sends a batch payload and converts rejected items into a
// *PartialFailureError.
func (c *Client) postBatch(ctx context.Context, operation, path string, body any) (*BatchResult, error) {
	var result BatchResult
	if err := c.post(ctx, path, nil, body, &result); err != nil {
		return nil, err
	}
	if err := result.check(operation); err != nil {
		c.logger.Warn().
			Str("operation", operation).
			Int("succeeded", result.Succeeded).
			Int("failed", result.Failed).
			Msg("batch partially failed")
		return &result, err
	}
	return &result, nil
}
