// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/models"
	"github.com/wneessen/go-mail"
)

// ErrNoRecipients is returned for a mail without any To address.
var ErrNoRecipients = errors.New("mail has no recipients")

const smtpTimeout = 15 * time.Second

// SMTPSender sends mails through an SMTP relay. A new connection is dialled
// per mail.
type SMTPSender struct {
	client     *mail.Client
	from       string
	senderName string
}

// NewSMTPSender builds a sender for cfg. Authentication is only enabled
// when a username is configured; STARTTLS is used when the server offers
// it.
func NewSMTPSender(cfg config.Mail) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(smtpTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.Sender, senderName: cfg.SenderName}, nil
}

// Send implements [Sender].
func (s *SMTPSender) Send(ctx context.Context, m models.Mail) error {
	msg, err := buildMessage(s.senderName, s.from, m)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error sending mail %q: %w", m.Subject, err)
	}
	return nil
}

func buildMessage(senderName, from string, m models.Mail) (*mail.Msg, error) {
	if len(m.To) == 0 {
		return nil, ErrNoRecipients
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(senderName, from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(m.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	msg.Subject(m.Subject)

	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	if m.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	}

	for _, a := range m.Attachments {
		if err := msg.AttachReader(a.Name, bytes.NewReader(a.Content)); err != nil {
			return nil, fmt.Errorf("error attaching %q: %w", a.Name, err)
		}
	}

	return msg, nil
}
