package bento

import (
	"context"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// Event is a tracked subscriber activity.
type Event struct {
	Type    string         `json:"type"`
	Email   string         `json:"email"`
	Fields  map[string]any `json:"fields,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// TrackEvents records events. Events for unknown emails create subscribers.
func (c *Client) TrackEvents(ctx context.Context, events []Event) (*BatchResult, error) {
	if len(events) == 0 {
		return nil, apierrors.Invalid(ErrInvalidRequest, "no events provided")
	}
	for _, e := range events {
		if err := validateEmail(e.Email); err != nil {
			return nil, err
		}
		if e.Type == "" {
			return nil, apierrors.Invalid(ErrInvalidRequest, "event type is required")
		}
	}

	return c.postBatch(ctx, "event tracking", "/batch/events", map[string]any{"events": events})
}
