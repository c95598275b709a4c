package bento

import (
	"context"
	"net/url"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// Lookup is a provider-defined experimental lookup answer.
type Lookup map[string]any

// BlacklistQuery selects the domain and/or IP to check.
type BlacklistQuery struct {
	Domain string
	IP     string
}

// EmailValidation is the input of ValidateEmail. Name, UserAgent and IP
// give the validator extra context.
type EmailValidation struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	IP        string `json:"ip,omitempty"`
}

// EmailValidationResult is the verdict of ValidateEmail.
type EmailValidationResult struct {
	Valid bool `json:"valid"`
}

// BlacklistStatus checks a domain or IP address against blacklists.
func (c *Client) BlacklistStatus(ctx context.Context, q BlacklistQuery) (Lookup, error) {
	if q.Domain == "" && q.IP == "" {
		return nil, apierrors.Invalid(ErrInvalidRequest, "either domain or IP is required")
	}

	query := url.Values{}
	if q.Domain != "" {
		query.Set("domain", q.Domain)
	}
	if q.IP != "" {
		if err := validateIP(q.IP); err != nil {
			return nil, err
		}
		query.Set("ip", q.IP)
	}

	var result Lookup
	if err := c.get(ctx, "/experimental/blacklist.json", query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateEmail asks the provider whether an address looks legitimate.
func (c *Client) ValidateEmail(ctx context.Context, v EmailValidation) (*EmailValidationResult, error) {
	if err := validateEmail(v.Email); err != nil {
		return nil, err
	}
	if v.IP != "" {
		if err := validateIP(v.IP); err != nil {
			return nil, err
		}
	}

	var result EmailValidationResult
	if err := c.post(ctx, "/experimental/validation", nil, v, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ModerateContent runs content moderation on a piece of text.
func (c *Client) ModerateContent(ctx context.Context, content string) (Lookup, error) {
	if content == "" {
		return nil, apierrors.Invalid(ErrInvalidContent, "content is required")
	}

	var result Lookup
	if err := c.post(ctx, "/experimental/content_moderation", url.Values{"content": {content}}, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PredictGender guesses a gender from a first name.
func (c *Client) PredictGender(ctx context.Context, name string) (Lookup, error) {
	if name == "" {
		return nil, apierrors.Invalid(ErrInvalidName, "name is required")
	}

	var result Lookup
	if err := c.post(ctx, "/experimental/gender", url.Values{"name": {name}}, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GeolocateIP resolves an IP address to a location.
func (c *Client) GeolocateIP(ctx context.Context, ip string) (Lookup, error) {
	if err := validateIP(ip); err != nil {
		return nil, err
	}

	var result Lookup
	if err := c.get(ctx, "/experimental/geolocation", url.Values{"ip": {ip}}, &result); err != nil {
		return nil, err
	}
	return result, nil
}
