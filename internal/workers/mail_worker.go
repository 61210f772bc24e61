// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/mailer"
	"github.com/lerkeveld/underground/models"
)

// MailWorker delivers queued mails with a fixed number of goroutines.
//
// Delivery is at most once: a failed or panicking send is logged and the
// mail is dropped.
type MailWorker struct {
	queue   *MailQueue
	sender  mailer.Sender
	workers int
	logger  *logger.Logger
}

func NewMailWorker(queue *MailQueue, sender mailer.Sender, workers int, log *logger.Logger) *MailWorker {
	if workers < 1 {
		workers = 1
	}
	return &MailWorker{queue: queue, sender: sender, workers: workers, logger: log}
}

// Run drains the queue until it is closed and empty, or until ctx is
// cancelled. Mails still queued on cancellation are dropped.
func (w *MailWorker) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.loop(ctx, i)
		}()
	}
	wg.Wait()

	if n := w.queue.Len(); n > 0 {
		w.logger.Warn().Str("func", "*MailWorker.Run").Int("dropped", n).Msg("mail workers stopped with mails still queued")
	}
}

func (w *MailWorker) loop(ctx context.Context, id int) {
	log := w.logger.With().Int("mail_worker", id).Logger()
	ctx = log.WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case mail, ok := <-w.queue.receive():
			if !ok {
				return
			}
			if err := w.deliver(ctx, mail); err != nil {
				log.Err(err).Str("func", "*MailWorker.loop").Strs("to", mail.To).Str("subject", mail.Subject).Msg("mail delivery failed")
			}
		}
	}
}

func (w *MailWorker) deliver(ctx context.Context, mail models.Mail) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic while sending mail: %v\n%s", p, debug.Stack())
		}
	}()

	return w.sender.Send(ctx, mail)
}
