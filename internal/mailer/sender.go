// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"fmt"
	"os"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
)

// NewSender picks the SMTP sender when a host is configured and the log
// sender otherwise.
func NewSender(cfg config.Mail, log *logger.Logger) (Sender, error) {
	if cfg.Host == "" {
		log.Warn().Msg("no mail host configured, mails will only be logged")
		return NewLogSender(log), nil
	}
	return NewSMTPSender(cfg)
}

// LoadAttachment reads the file at path once so it can be attached to every
// reservation confirmation. An empty path yields no attachment.
func LoadAttachment(path, name string) (*models.Attachment, error) {
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading attachment: %w", err)
	}

	return &models.Attachment{Name: name, Content: content}, nil
}
