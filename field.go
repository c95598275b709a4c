package bento

import (
	"context"
	"time"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// Field is a custom field definition.
type Field struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes FieldAttributes `json:"attributes"`
}

// FieldAttributes holds the field's data.
type FieldAttributes struct {
	Name        string     `json:"name"`
	Key         string     `json:"key"`
	Whitelisted *bool      `json:"whitelisted"`
	CreatedAt   *time.Time `json:"created_at"`
}

// ListFields returns every custom field of the site.
func (c *Client) ListFields(ctx context.Context) ([]Field, error) {
	var resp envelope[[]Field]
	if err := c.get(ctx, "/fetch/fields", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateField creates a custom field.
func (c *Client) CreateField(ctx context.Context, key string) (*Field, error) {
	if key == "" {
		return nil, apierrors.Invalid(ErrInvalidRequest, "field key is required")
	}

	body := map[string]any{"field": map[string]string{"key": key}}

	var resp envelope[Field]
	if err := c.post(ctx, "/fetch/fields", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
