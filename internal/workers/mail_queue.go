// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
)

// MailQueue is a bounded buffer of mails waiting for delivery.
//
// Enqueue never blocks: a mail that does not fit, or that arrives after
// Close, is dropped and logged.
type MailQueue struct {
	mails chan models.Mail

	mu     sync.RWMutex
	closed bool
}

func NewMailQueue(size int) *MailQueue {
	return &MailQueue{mails: make(chan models.Mail, size)}
}

// Enqueue hands mail to the workers and reports whether it was accepted.
func (q *MailQueue) Enqueue(ctx context.Context, mail models.Mail) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	log := logger.FromContext(ctx)

	if q.closed {
		log.Warn().Str("func", "*MailQueue.Enqueue").Str("subject", mail.Subject).Msg("mail queue closed, mail dropped")
		return false
	}

	select {
	case q.mails <- mail:
		return true
	default:
		log.Error().Str("func", "*MailQueue.Enqueue").Str("subject", mail.Subject).Msg("mail queue full, mail dropped")
		return false
	}
}

// Close stops accepting mails. Mails already queued stay available to the
// workers. Close is idempotent.
func (q *MailQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.mails)
	}
}

// Len returns the number of mails waiting.
func (q *MailQueue) Len() int {
	return len(q.mails)
}

func (q *MailQueue) receive() <-chan models.Mail {
	return q.mails
}
