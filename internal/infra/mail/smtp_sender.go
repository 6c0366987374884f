// Package mail implements the outbound mail transport over SMTP.
package mail

import (
	"bytes"
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

type smtpSender struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPSender creates a MailSender over SMTP. A nil SMTP config is a valid
// deployment (mail features disabled); Enabled reports it and Send fails.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	return &smtpSender{cfg: cfg.SMTP, logger: logger}
}

// Enabled reports whether an SMTP transport is configured.
func (s *smtpSender) Enabled() bool {
	return s.cfg != nil && s.cfg.Host != ""
}

// Send delivers one HTML mail. The client dials per send; confirmation mail
// volume does not justify a pooled connection.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string, inline ...service.InlineImage) error {
	if !s.Enabled() {
		return errors.New("smtp transport is not configured")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	for _, img := range inline {
		if err := msg.EmbedReader(img.Filename, bytes.NewReader(img.Data),
			gomail.WithFileContentID(img.ContentID),
		); err != nil {
			return errors.Wrapf(err, "failed to embed %s", img.Filename)
		}
	}

	opts := []gomail.Option{gomail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to create SMTP client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	s.logger.Info("mail sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}
