package bento

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bentonow/bento-go/internal/api"
)

// RetryConfig configures how rate-limited requests are retried.
type RetryConfig = api.RetryConfig

// DefaultRetryConfig returns the default policy: three attempts in total,
// 100ms then 200ms apart, retrying only on 429.
func DefaultRetryConfig() *RetryConfig {
	return api.DefaultRetryConfig()
}

// clientConfig holds optional client settings.
type clientConfig struct {
	httpClient *http.Client
	logger     zerolog.Logger
	retry      *RetryConfig
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client. Its Timeout is used as is; the
// Config timeout only applies to the default client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for request diagnostics. The default discards
// all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRetryConfig replaces the rate-limit retry policy.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *clientConfig) {
		c.retry = cfg
	}
}
