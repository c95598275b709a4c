// Package apierrors provides shared error types for the Bento client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidConfig is returned when client configuration is incomplete or invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidEmail is returned when an email-shaped value has no "@".
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidIPAddress is returned when an IP address cannot be parsed.
	ErrInvalidIPAddress = errors.New("invalid IP address")

	// ErrInvalidRequest is returned when request parameters are missing or malformed.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidCommand is returned for an unknown subscriber command type.
	ErrInvalidCommand = errors.New("invalid command type")

	// ErrInvalidName is returned when a name is empty.
	ErrInvalidName = errors.New("invalid name format")

	// ErrInvalidSegmentID is returned when a segment ID is empty.
	ErrInvalidSegmentID = errors.New("invalid segment ID")

	// ErrInvalidContent is returned when content is empty.
	ErrInvalidContent = errors.New("invalid content")

	// ErrInvalidTags is returned when a tag list contains empty entries.
	ErrInvalidTags = errors.New("invalid tags format")

	// ErrInvalidBatchSize is returned when a batch size is out of range.
	ErrInvalidBatchSize = errors.New("invalid batch size")

	// ErrUnexpectedResponse is returned when the API answers with a non-success status
	// or reports failed items in a batch.
	ErrUnexpectedResponse = errors.New("unexpected API response")

	// ErrPartialFailure is returned when a batch endpoint rejected some of its items.
	ErrPartialFailure = errors.New("batch partially failed")

	// ErrRateLimit is returned when the API kept answering 429 after all retries.
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrAuthenticationFailed is returned when the API rejects the credentials.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTransport is returned for network and serialization failures.
	ErrTransport = errors.New("HTTP client error")
)

// ValidationError is a local input check that failed before any request was sent.
type ValidationError struct {
	Kind   error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == e.Kind
}

// BentoError implements the BentoError interface.
func (e *ValidationError) BentoError() {}

// Invalid builds a ValidationError of the given kind.
func Invalid(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// APIError represents a non-success HTTP answer from the Bento API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", ErrUnexpectedResponse, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", ErrUnexpectedResponse, e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		if target == ErrAuthenticationFailed {
			return true
		}
	case 429:
		if target == ErrRateLimit {
			return true
		}
	}
	return target == ErrUnexpectedResponse
}

// BentoError implements the BentoError interface.
func (e *APIError) BentoError() {}

// PartialFailureError reports a batch call where the API rejected some items.
type PartialFailureError struct {
	Operation string
	Succeeded int
	Failed    int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: %s partially failed: %d succeeded, %d failed",
		ErrUnexpectedResponse, e.Operation, e.Succeeded, e.Failed)
}

// Is matches both ErrPartialFailure and ErrUnexpectedResponse.
func (e *PartialFailureError) Is(target error) bool {
	return target == ErrPartialFailure || target == ErrUnexpectedResponse
}

// BentoError implements the BentoError interface.
func (e *PartialFailureError) BentoError() {}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *NetworkError) Is(target error) bool {
	return target == ErrTransport
}

// BentoError implements the BentoError interface.
func (e *NetworkError) BentoError() {}

// SerializationError represents a failure to encode a request or decode a response.
type SerializationError struct {
	Op  string // "encode", "decode"
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to %s JSON: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SerializationError) Is(target error) bool {
	return target == ErrTransport
}

// BentoError implements the BentoError interface.
func (e *SerializationError) BentoError() {}
