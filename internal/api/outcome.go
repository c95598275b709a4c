package api

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// OutcomeKind classifies the final HTTP answer of an attempt sequence.
type OutcomeKind int

const (
	// OutcomeSuccess is a 2xx answer.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeRateLimited is a 429 answer after all retries were spent.
	OutcomeRateLimited
	// OutcomeAuthFailed is a 401 answer.
	OutcomeAuthFailed
	// OutcomeOtherFailure is any other non-2xx answer.
	OutcomeOtherFailure
)

// String returns the string representation of an OutcomeKind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeAuthFailed:
		return "auth_failed"
	case OutcomeOtherFailure:
		return "other_failure"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of Execute.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	// Body holds the response payload for OutcomeSuccess.
	Body []byte
	// Message holds the response text for OutcomeOtherFailure.
	Message  string
	Attempts int
}

// Err maps a non-success outcome onto the error taxonomy.
func (o *Outcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeRateLimited:
		return apierrors.ErrRateLimit
	case OutcomeAuthFailed:
		return apierrors.ErrAuthenticationFailed
	default:
		return &apierrors.APIError{StatusCode: o.StatusCode, Message: o.Message}
	}
}

// Decode unmarshals the success body into v. A nil v skips decoding. An
// empty body cannot satisfy v and is reported as a SerializationError.
func (o *Outcome) Decode(v any) error {
	if v == nil {
		return nil
	}
	if len(bytes.TrimSpace(o.Body)) == 0 {
		return &apierrors.SerializationError{Op: "decode", Err: io.ErrUnexpectedEOF}
	}
	if err := json.Unmarshal(o.Body, v); err != nil {
		return &apierrors.SerializationError{Op: "decode", Err: err}
	}
	return nil
}
