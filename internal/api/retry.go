package api

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryConfig configures retry behavior for failed HTTP requests.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the initial request.
	MaxRetries int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps every single wait, jitter included.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay increases after each attempt.
	Multiplier float64
	// Jitter is the randomization factor (0.0 to 1.0) added to delays.
	Jitter float64
	// RetryableOn determines if a status code should trigger a retry.
	RetryableOn func(statusCode int) bool
}

// DefaultRetryConfig returns the default retry configuration: three attempts in
// total, waiting 100ms then 200ms, and only for 429 Too Many Requests.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries: 2,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     0,
		RetryableOn: func(statusCode int) bool {
			return statusCode == http.StatusTooManyRequests
		},
	}
}

// ShouldRetry determines if a request should be retried. attempt is the
// zero-based index of the attempt that just completed.
func (r *RetryConfig) ShouldRetry(attempt int, statusCode int) bool {
	if attempt >= r.MaxRetries {
		return false
	}
	if r.RetryableOn == nil {
		return statusCode == http.StatusTooManyRequests
	}
	return r.RetryableOn(statusCode)
}

// Delay returns the wait before retry number attempt+1: BaseDelay grown by
// Multiplier per attempt. Jitter spreads the wait by up to ±Jitter of its
// value; the default policy has none, so waits are exactly 100ms then 200ms.
// MaxDelay bounds the result after jitter is applied.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	limit := float64(r.MaxDelay)
	d := math.Min(float64(r.BaseDelay)*math.Pow(r.Multiplier, float64(attempt)), limit)

	if r.Jitter > 0 {
		spread := d * r.Jitter
		d = math.Min(d+spread*(2*rand.Float64()-1), limit)
	}
	return time.Duration(d)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
