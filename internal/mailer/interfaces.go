// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer delivers rendered notification mails.
package mailer

import (
	"context"

	"github.com/lerkeveld/underground/models"
)

// Sender delivers a single rendered mail.
type Sender interface {
	Send(ctx context.Context, mail models.Mail) error
}
