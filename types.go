package bento

import (
	"net/netip"
	"strings"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// BatchResult is the answer of a batch endpoint.
type BatchResult struct {
	Succeeded int `json:"results"`
	Failed    int `json:"failed"`
}

// check returns a *PartialFailureError when any item was rejected.
// Zero succeeded items with zero failures is still a success.
func (r *BatchResult) check(operation string) error {
	if r.Failed > 0 {
		return &apierrors.PartialFailureError{
			Operation: operation,
			Succeeded: r.Succeeded,
			Failed:    r.Failed,
		}
	}
	return nil
}

// envelope is the {"data": T} wrapper used by fetch endpoints.
type envelope[T any] struct {
	Data T `json:"data"`
}

// Stats is a provider-defined statistics document.
type Stats map[string]any

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return apierrors.Invalid(ErrInvalidEmail, "%s", email)
	}
	return nil
}

func validateIP(ip string) error {
	addr, err := netip.ParseAddr(ip)
	if err != nil || addr.Zone() != "" {
		return apierrors.Invalid(ErrInvalidIPAddress, "%s", ip)
	}
	return nil
}

// compactTagList drops empty and blank entries from a comma separated tag
// list. The remaining names are trimmed.
func compactTagList(tags string) string {
	if tags == "" {
		return ""
	}
	parts := strings.Split(tags, ",")
	kept := parts[:0]
	for _, tag := range parts {
		if tag = strings.TrimSpace(tag); tag != "" {
			kept = append(kept, tag)
		}
	}
	return strings.Join(kept, ",")
}
