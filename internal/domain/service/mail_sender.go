// Package service defines contracts for external collaborators the use cases
// depend on, keeping the infrastructure details out of the domain.
package service

import "context"

// InlineImage is an image embedded in an HTML mail body via a Content-ID.
type InlineImage struct {
	ContentID string
	Filename  string
	Data      []byte
}

// MailSender defines the interface for the outbound mail transport.
// Sending is best-effort: a failure must never roll back the operation that
// triggered the mail.
type MailSender interface {
	// Send delivers one HTML mail. Inline images are optional.
	Send(ctx context.Context, to, subject, htmlBody string, inline ...InlineImage) error

	// Enabled reports whether a transport is configured. When false, Send
	// always fails with the configuration-missing condition.
	Enabled() bool
}
