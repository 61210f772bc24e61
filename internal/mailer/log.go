// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
)

// LogSender only logs mails. It is used when no SMTP host is configured.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{logger: log}
}

// Send implements [Sender].
func (s *LogSender) Send(_ context.Context, m models.Mail) error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}

	s.logger.Info().
		Strs("to", m.To).
		Str("subject", m.Subject).
		Int("attachments", len(m.Attachments)).
		Str("text", m.Text).
		Msg("mail not sent: no smtp host configured")
	return nil
}
