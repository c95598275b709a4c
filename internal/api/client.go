package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bentonow/bento-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the production Bento API root.
	DefaultBaseURL = "https://app.bentonow.com/api/v1"
	// DefaultTimeout is the per-request timeout of the default HTTP client.
	DefaultTimeout = 30 * time.Second

	unknownErrorBody = "Unknown error"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credentials identify a Bento site.
type Credentials struct {
	PublishableKey string
	SecretKey      string
	SiteUUID       string
}

// Client sends prepared requests to the Bento API with authentication and
// rate-limit retries. It is safe for concurrent use.
type Client struct {
	baseURL       string
	siteUUID      string
	authorization string
	userAgent     string
	timeout       time.Duration
	doer          Doer
	retry         *RetryConfig
	logger        zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client. Ignored when
// WithDoer supplies a transport. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// WithRetryConfig replaces the retry policy.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		if cfg != nil {
			c.retry = cfg
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// UserAgent formats the User-Agent header value for a library version and site.
func UserAgent(version, siteUUID string) string {
	return fmt.Sprintf("bento-go-%s-%s", version, siteUUID)
}

// New creates a new API client.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if creds.PublishableKey == "" || creds.SecretKey == "" || creds.SiteUUID == "" {
		return nil, apierrors.Invalid(apierrors.ErrInvalidConfig, "publishable key, secret key and site UUID are required")
	}

	token := base64.StdEncoding.EncodeToString([]byte(creds.PublishableKey + ":" + creds.SecretKey))

	c := &Client{
		baseURL:       DefaultBaseURL,
		siteUUID:      creds.SiteUUID,
		authorization: "Basic " + token,
		userAgent:     UserAgent("dev", creds.SiteUUID),
		timeout:       DefaultTimeout,
		retry:         DefaultRetryConfig(),
		logger:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.doer == nil {
		c.doer = &http.Client{Timeout: c.timeout}
	}

	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute sends req, retrying on rate limiting, and classifies the final answer.
// The returned error is non-nil only for transport failures; HTTP failures are
// reported through the Outcome.
func (c *Client) Execute(ctx context.Context, req *PreparedRequest) (*Outcome, error) {
	fullURL := BuildURL(c.baseURL, req.Path, c.siteUUID, req.Query)
	log := c.logger.With().Str("method", req.Method).Str("path", req.Path).Logger()

	for attempt := 0; ; attempt++ {
		httpReq, err := req.build(ctx, fullURL)
		if err != nil {
			return nil, &apierrors.NetworkError{Err: err, URL: fullURL, Attempt: attempt + 1}
		}
		c.setHeaders(httpReq)

		log.Debug().Int("attempt", attempt+1).Msg("sending request")

		resp, err := c.doer.Do(httpReq)
		if err != nil {
			log.Error().Err(err).Int("attempt", attempt+1).Msg("request failed")
			return nil, &apierrors.NetworkError{Err: err, URL: fullURL, Attempt: attempt + 1}
		}

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			drain(resp)
			delay := c.retry.Delay(attempt)
			log.Warn().
				Int("status", resp.StatusCode).
				Int("attempt", attempt+1).
				Dur("delay", delay).
				Msg("retrying request")
			if err := wait(ctx, delay); err != nil {
				return nil, &apierrors.NetworkError{Err: err, URL: fullURL, Attempt: attempt + 1}
			}
			continue
		}

		outcome, err := classify(resp, attempt+1)
		if err != nil {
			return nil, &apierrors.NetworkError{Err: err, URL: fullURL, Attempt: attempt + 1}
		}

		switch outcome.Kind {
		case OutcomeSuccess:
			log.Debug().Int("status", outcome.StatusCode).Msg("request succeeded")
		case OutcomeRateLimited:
			log.Warn().Int("attempts", outcome.Attempts).Msg("rate limit exceeded")
		case OutcomeAuthFailed:
			log.Warn().Msg("authentication failed")
		default:
			log.Error().Int("status", outcome.StatusCode).Str("body", outcome.Message).Msg("request rejected")
		}

		return outcome, nil
	}
}

// Do executes req and decodes a successful response into result.
// A nil result discards the body.
func (c *Client) Do(ctx context.Context, req *PreparedRequest, result any) error {
	outcome, err := c.Execute(ctx, req)
	if err != nil {
		return err
	}
	if err := outcome.Err(); err != nil {
		return err
	}
	return outcome.Decode(result)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
}

func classify(resp *http.Response, attempts int) (*Outcome, error) {
	defer resp.Body.Close()

	outcome := &Outcome{StatusCode: resp.StatusCode, Attempts: attempts}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		outcome.Kind = OutcomeSuccess
		outcome.Body = body
	case resp.StatusCode == http.StatusTooManyRequests:
		outcome.Kind = OutcomeRateLimited
	case resp.StatusCode == http.StatusUnauthorized:
		outcome.Kind = OutcomeAuthFailed
	default:
		outcome.Kind = OutcomeOtherFailure
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			outcome.Message = unknownErrorBody
		} else {
			outcome.Message = string(body)
		}
	}

	return outcome, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
