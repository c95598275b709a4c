package bento

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// Subscriber is a subscriber resource.
type Subscriber struct {
	ID         string               `json:"id"`
	Type       string               `json:"type"`
	Attributes SubscriberAttributes `json:"attributes"`
}

// SubscriberAttributes holds the subscriber's data.
type SubscriberAttributes struct {
	UUID           string         `json:"uuid"`
	Email          string         `json:"email"`
	Fields         map[string]any `json:"fields"`
	CachedTagIDs   []string       `json:"cached_tag_ids"`
	UnsubscribedAt *time.Time     `json:"unsubscribed_at"`
}

// ParsedUUID parses the UUID attribute.
func (a SubscriberAttributes) ParsedUUID() (uuid.UUID, error) {
	return uuid.Parse(a.UUID)
}

// IsUnsubscribed reports whether the subscriber has opted out.
func (a SubscriberAttributes) IsUnsubscribed() bool {
	return a.UnsubscribedAt != nil
}

// SubscriberInput is the full payload for creating or updating a subscriber.
type SubscriberInput struct {
	Email      string         `json:"email"`
	FirstName  string         `json:"first_name,omitempty"`
	LastName   string         `json:"last_name,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	RemoveTags []string       `json:"remove_tags,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
}

func (s SubscriberInput) validate() error {
	if err := validateEmail(s.Email); err != nil {
		return err
	}
	for _, tags := range [][]string{s.Tags, s.RemoveTags} {
		for _, tag := range tags {
			if strings.TrimSpace(tag) == "" {
				return apierrors.Invalid(ErrInvalidTags, "empty tag in %q", tags)
			}
		}
	}
	return nil
}

// ImportSubscriber is one entry of a bulk import. Tags and RemoveTags are
// comma separated tag names; empty entries are dropped. CustomFields are sent as top-level keys next to
// the named fields.
type ImportSubscriber struct {
	Email        string
	FirstName    string
	LastName     string
	Tags         string
	RemoveTags   string
	CustomFields map[string]any
}

// MarshalJSON flattens CustomFields into the subscriber object. Named
// fields win over custom fields with the same key.
func (s ImportSubscriber) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(s.CustomFields)+5)
	for k, v := range s.CustomFields {
		m[k] = v
	}
	m["email"] = s.Email
	if s.FirstName != "" {
		m["first_name"] = s.FirstName
	}
	if s.LastName != "" {
		m["last_name"] = s.LastName
	}
	if tags := compactTagList(s.Tags); tags != "" {
		m["tags"] = tags
	}
	if tags := compactTagList(s.RemoveTags); tags != "" {
		m["remove_tags"] = tags
	}
	return json.Marshal(m)
}

// FindSubscriber looks up a subscriber by email.
func (c *Client) FindSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	var resp envelope[Subscriber]
	if err := c.get(ctx, "/fetch/subscribers", url.Values{"email": {email}}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateSubscriber creates a subscriber with only an email address.
func (c *Client) CreateSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	body := map[string]any{"subscriber": map[string]string{"email": email}}

	var resp envelope[Subscriber]
	if err := c.post(ctx, "/fetch/subscribers", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpsertSubscriber creates or updates a subscriber with names, tags and fields.
func (c *Client) UpsertSubscriber(ctx context.Context, input SubscriberInput) (*Subscriber, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	body := map[string]any{"subscriber": input}

	var resp envelope[Subscriber]
	if err := c.post(ctx, "/fetch/subscribers", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ImportSubscribers creates or updates subscribers in bulk.
func (c *Client) ImportSubscribers(ctx context.Context, subscribers []ImportSubscriber) (*BatchResult, error) {
	if len(subscribers) == 0 {
		return nil, apierrors.Invalid(ErrInvalidRequest, "no subscribers provided")
	}
	for _, s := range subscribers {
		if err := validateEmail(s.Email); err != nil {
			return nil, err
		}
	}

	body := map[string]any{"subscribers": subscribers}
	return c.postBatch(ctx, "import", "/batch/subscribers", body)
}
