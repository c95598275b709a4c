package bento

import (
	"time"

	"github.com/bentonow/bento-go/internal/api"
	"github.com/bentonow/bento-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the production Bento API root.
	DefaultBaseURL = api.DefaultBaseURL
	// DefaultTimeout is the per-attempt request timeout.
	DefaultTimeout = api.DefaultTimeout
)

// Config holds the credentials and connection settings for a Bento site.
// A Config is immutable once built and may be shared between clients.
type Config struct {
	publishableKey string
	secretKey      string
	siteUUID       string
	baseURL        string
	timeout        time.Duration
}

// PublishableKey returns the publishable API key.
func (c *Config) PublishableKey() string { return c.publishableKey }

// SecretKey returns the secret API key.
func (c *Config) SecretKey() string { return c.secretKey }

// SiteUUID returns the site identifier sent with every request.
func (c *Config) SiteUUID() string { return c.siteUUID }

// BaseURL returns the API root.
func (c *Config) BaseURL() string { return c.baseURL }

// Timeout returns the per-attempt request timeout.
func (c *Config) Timeout() time.Duration { return c.timeout }

// ConfigBuilder assembles a Config.
//
//	cfg, err := bento.NewConfigBuilder().
//	    PublishableKey("pk").
//	    SecretKey("sk").
//	    SiteUUID("site").
//	    Build()
type ConfigBuilder struct {
	publishableKey string
	secretKey      string
	siteUUID       string
	baseURL        string
	timeout        time.Duration
}

// NewConfigBuilder returns an empty builder.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// PublishableKey sets the publishable API key.
func (b *ConfigBuilder) PublishableKey(key string) *ConfigBuilder {
	b.publishableKey = key
	return b
}

// SecretKey sets the secret API key.
func (b *ConfigBuilder) SecretKey(key string) *ConfigBuilder {
	b.secretKey = key
	return b
}

// SiteUUID sets the site identifier.
func (b *ConfigBuilder) SiteUUID(uuid string) *ConfigBuilder {
	b.siteUUID = uuid
	return b
}

// BaseURL overrides the API root.
func (b *ConfigBuilder) BaseURL(url string) *ConfigBuilder {
	b.baseURL = url
	return b
}

// Timeout sets the per-attempt request timeout. Non-positive values keep the default.
func (b *ConfigBuilder) Timeout(d time.Duration) *ConfigBuilder {
	b.timeout = d
	return b
}

// Build validates the builder and returns the Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	switch {
	case b.publishableKey == "":
		return nil, apierrors.Invalid(ErrInvalidConfig, "publishable key is required")
	case b.secretKey == "":
		return nil, apierrors.Invalid(ErrInvalidConfig, "secret key is required")
	case b.siteUUID == "":
		return nil, apierrors.Invalid(ErrInvalidConfig, "site UUID is required")
	}

	cfg := &Config{
		publishableKey: b.publishableKey,
		secretKey:      b.secretKey,
		siteUUID:       b.siteUUID,
		baseURL:        b.baseURL,
		timeout:        b.timeout,
	}
	if cfg.baseURL == "" {
		cfg.baseURL = DefaultBaseURL
	}
	if cfg.timeout <= 0 {
		cfg.timeout = DefaultTimeout
	}
	return cfg, nil
}
