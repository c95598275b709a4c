package bento

import (
	"github.com/bentonow/bento-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks. Validation sentinels are returned
// before any request is sent.
var (
	// ErrInvalidConfig is returned when client configuration is incomplete.
	ErrInvalidConfig = apierrors.ErrInvalidConfig

	// ErrInvalidEmail is returned when an email-shaped value has no "@".
	ErrInvalidEmail = apierrors.ErrInvalidEmail

	// ErrInvalidIPAddress is returned when an IP address cannot be parsed.
	ErrInvalidIPAddress = apierrors.ErrInvalidIPAddress

	// ErrInvalidRequest is returned for missing or malformed request parameters.
	ErrInvalidRequest = apierrors.ErrInvalidRequest

	// ErrInvalidCommand is returned for an unknown subscriber command type.
	ErrInvalidCommand = apierrors.ErrInvalidCommand

	// ErrInvalidName is returned when a name lookup gets an empty name.
	ErrInvalidName = apierrors.ErrInvalidName

	// ErrInvalidSegmentID is returned when a segment ID is empty.
	ErrInvalidSegmentID = apierrors.ErrInvalidSegmentID

	// ErrInvalidContent is returned when content to moderate is empty.
	ErrInvalidContent = apierrors.ErrInvalidContent

	// ErrInvalidTags is returned when a tag list contains empty entries.
	ErrInvalidTags = apierrors.ErrInvalidTags

	// ErrInvalidBatchSize is returned when a batch is empty, too large or has
	// a non-positive rate.
	ErrInvalidBatchSize = apierrors.ErrInvalidBatchSize

	// ErrUnexpectedResponse is returned for non-success answers and for
	// batches the API partially rejected.
	ErrUnexpectedResponse = apierrors.ErrUnexpectedResponse

	// ErrPartialFailure is returned when a batch endpoint rejected some items.
	ErrPartialFailure = apierrors.ErrPartialFailure

	// ErrRateLimit is returned when the API still answered 429 after all retries.
	ErrRateLimit = apierrors.ErrRateLimit

	// ErrAuthenticationFailed is returned when the API rejects the credentials.
	ErrAuthenticationFailed = apierrors.ErrAuthenticationFailed

	// ErrTransport is returned for network and serialization failures.
	ErrTransport = apierrors.ErrTransport
)

// BentoError is implemented by all SDK errors.
type BentoError interface {
	error
	BentoError() // marker method
}

// ValidationError is a failed local input check.
type ValidationError = apierrors.ValidationError

// APIError represents a non-success HTTP answer from the Bento API.
type APIError = apierrors.APIError

// PartialFailureError reports a batch call where the API rejected some items.
// Use errors.As to read the counts.
type PartialFailureError = apierrors.PartialFailureError

// NetworkError represents a network-level failure.
type NetworkError = apierrors.NetworkError

// SerializationError represents a JSON encode or decode failure.
type SerializationError = apierrors.SerializationError

var (
	_ BentoError = (*ValidationError)(nil)
	_ BentoError = (*APIError)(nil)
	_ BentoError = (*PartialFailureError)(nil)
	_ BentoError = (*NetworkError)(nil)
	_ BentoError = (*SerializationError)(nil)
)
