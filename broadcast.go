package bento

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bentonow/bento-go/internal/api"
	"github.com/bentonow/bento-go/internal/apierrors"
)

// BroadcastType is the content format of a broadcast.
type BroadcastType string

const (
	BroadcastPlain BroadcastType = "plain"
	BroadcastRaw   BroadcastType = "raw"
)

// Contact is a sender identity.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Broadcast is a one-off campaign email.
type Broadcast struct {
	Name             string        `json:"name"`
	Subject          string        `json:"subject"`
	Content          string        `json:"content"`
	Type             BroadcastType `json:"type"`
	From             Contact       `json:"from"`
	InclusiveTags    string        `json:"inclusive_tags,omitempty"`
	ExclusiveTags    string        `json:"exclusive_tags,omitempty"`
	SegmentID        string        `json:"segment_id,omitempty"`
	BatchSizePerHour int           `json:"batch_size_per_hour"`
}

func (b Broadcast) validate() error {
	switch {
	case b.Name == "":
		return apierrors.Invalid(ErrInvalidRequest, "broadcast name is required")
	case b.Subject == "":
		return apierrors.Invalid(ErrInvalidRequest, "subject is required")
	case b.Content == "":
		return apierrors.Invalid(ErrInvalidRequest, "content is required")
	case b.Type != BroadcastPlain && b.Type != BroadcastRaw:
		return apierrors.Invalid(ErrInvalidRequest, "unknown broadcast type %q", b.Type)
	}
	if err := validateEmail(b.From.Email); err != nil {
		return err
	}
	if b.BatchSizePerHour <= 0 {
		return apierrors.Invalid(ErrInvalidBatchSize, "batch size must be positive")
	}
	return nil
}

// ListBroadcasts returns the site's broadcasts.
func (c *Client) ListBroadcasts(ctx context.Context) ([]Broadcast, error) {
	var resp struct {
		Data       []Broadcast `json:"data"`
		Broadcasts []Broadcast `json:"broadcasts"`
	}
	if err := c.get(ctx, "/fetch/broadcasts", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data != nil {
		return resp.Data, nil
	}
	return resp.Broadcasts, nil
}

// CreateBroadcasts schedules broadcasts. Any success status is accepted; when
// the answer carries batch counts with rejected items a *PartialFailureError
// is returned. Without counts every broadcast is reported as succeeded.
func (c *Client) CreateBroadcasts(ctx context.Context, broadcasts []Broadcast) (*BatchResult, error) {
	if len(broadcasts) == 0 {
		return nil, apierrors.Invalid(ErrInvalidRequest, "no broadcasts provided")
	}
	for _, b := range broadcasts {
		if err := b.validate(); err != nil {
			return nil, err
		}
	}

	req, err := api.NewRequest(http.MethodPost, "/batch/broadcasts", nil, map[string]any{"broadcasts": broadcasts})
	if err != nil {
		return nil, err
	}
	outcome, err := c.apiClient.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := outcome.Err(); err != nil {
		return nil, err
	}

	var counts struct {
		Results *int `json:"results"`
		Failed  *int `json:"failed"`
	}
	if json.Unmarshal(outcome.Body, &counts) != nil || counts.Results == nil || counts.Failed == nil {
		return &BatchResult{Succeeded: len(broadcasts)}, nil
	}

	result := &BatchResult{Succeeded: *counts.Results, Failed: *counts.Failed}
	if err := result.check("broadcast creation"); err != nil {
		return result, err
	}
	return result, nil
}
