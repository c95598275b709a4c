package bento

import (
	"context"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// Tag is a tag resource.
type Tag struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Attributes TagAttributes `json:"attributes"`
}

// TagAttributes holds the tag's data.
type TagAttributes struct {
	Name        string  `json:"name"`
	CreatedAt   string  `json:"created_at"`
	DiscardedAt *string `json:"discarded_at"`
	SiteID      int     `json:"site_id"`
}

// ListTags returns every tag of the site.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var resp envelope[[]Tag]
	if err := c.get(ctx, "/fetch/tags", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	if name == "" {
		return nil, apierrors.Invalid(ErrInvalidRequest, "tag name is required")
	}

	body := map[string]any{"tag": map[string]string{"name": name}}

	var resp envelope[Tag]
	if err := c.post(ctx, "/fetch/tags", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
