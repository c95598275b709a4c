package bento

import (
	"context"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// MaxEmailBatchSize is the largest number of emails accepted per batch.
const MaxEmailBatchSize = 60

// Email is a single outgoing email.
// Personalizations are substituted into the HTML body by the provider.
type Email struct {
	To               string         `json:"to"`
	From             string         `json:"from"`
	Subject          string         `json:"subject"`
	HTMLBody         string         `json:"html_body"`
	Transactional    bool           `json:"transactional"`
	Personalizations map[string]any `json:"personalizations,omitempty"`
}

func (e Email) validate() error {
	if err := validateEmail(e.To); err != nil {
		return err
	}
	if err := validateEmail(e.From); err != nil {
		return err
	}
	if e.Subject == "" {
		return apierrors.Invalid(ErrInvalidRequest, "subject is required")
	}
	if e.HTMLBody == "" {
		return apierrors.Invalid(ErrInvalidRequest, "html body is required")
	}
	return nil
}

// EmailBatch is a bounded list of emails. It never holds more than
// MaxEmailBatchSize entries.
type EmailBatch struct {
	emails []Email
}

// NewEmailBatch creates a batch from emails.
func NewEmailBatch(emails ...Email) (*EmailBatch, error) {
	if len(emails) > MaxEmailBatchSize {
		return nil, apierrors.Invalid(ErrInvalidBatchSize, "maximum batch size is %d emails", MaxEmailBatchSize)
	}
	b := &EmailBatch{emails: make([]Email, 0, len(emails))}
	b.emails = append(b.emails, emails...)
	return b, nil
}

// Add appends an email. It fails once the batch is full.
func (b *EmailBatch) Add(email Email) error {
	if len(b.emails) >= MaxEmailBatchSize {
		return apierrors.Invalid(ErrInvalidBatchSize, "maximum batch size is %d emails", MaxEmailBatchSize)
	}
	b.emails = append(b.emails, email)
	return nil
}

// Len returns the number of emails in the batch.
func (b *EmailBatch) Len() int {
	return len(b.emails)
}

// IsEmpty reports whether the batch has no emails.
func (b *EmailBatch) IsEmpty() bool {
	return len(b.emails) == 0
}

// Emails returns a copy of the batch contents.
func (b *EmailBatch) Emails() []Email {
	out := make([]Email, len(b.emails))
	copy(out, b.emails)
	return out
}

// SendEmails sends every email in the batch.
func (c *Client) SendEmails(ctx context.Context, batch *EmailBatch) (*BatchResult, error) {
	if batch == nil || batch.IsEmpty() {
		return nil, apierrors.Invalid(ErrInvalidRequest, "no emails provided")
	}
	for _, e := range batch.emails {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}

	return c.postBatch(ctx, "email delivery", "/batch/emails", map[string]any{"emails": batch.emails})
}
