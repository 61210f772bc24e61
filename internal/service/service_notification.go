// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/render"
	"github.com/lerkeveld/underground/models"
)

type notificationService struct {
	emails MailRenderer
	queue  MailQueue

	baseURL         string
	tokenMaxAge     time.Duration
	kotbarAdmins    []string
	materiaalAdmins []string
	// attachment is added to the confirmations sent to residents.
	attachment *models.Attachment

	logger *logger.Logger
}

func NewNotificationService(
	emails MailRenderer,
	queue MailQueue,
	attachment *models.Attachment,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) NotificationService {
	return &notificationService{
		emails:          emails,
		queue:           queue,
		baseURL:         strings.TrimRight(cfg.App.BaseURL, "/"),
		tokenMaxAge:     cfg.Auth.EmailTokenMaxAge,
		kotbarAdmins:    cfg.Mail.KotbarAdmins,
		materiaalAdmins: cfg.Mail.MateriaalAdmins,
		attachment:      attachment,
		logger:          logger,
	}
}

func (n *notificationService) SendActivation(ctx context.Context, user models.User, token string) {
	n.send(ctx, render.EmailActivation, []string{user.Email}, render.TokenMailData{
		User:     user,
		URL:      n.baseURL + "/token/activate/" + token,
		ValidFor: validFor(n.tokenMaxAge),
	}, false)
}

func (n *notificationService) SendReset(ctx context.Context, user models.User, token string) {
	n.send(ctx, render.EmailReset, []string{user.Email}, render.TokenMailData{
		User:     user,
		URL:      n.baseURL + "/token/reset/" + token,
		ValidFor: validFor(n.tokenMaxAge),
	}, false)
}

// SendKotbarReservation confirms the booking to the resident and informs
// the kotbar mailing list.
func (n *notificationService) SendKotbarReservation(ctx context.Context, user models.User, reservation models.KotbarReservation) {
	data := render.KotbarMailData{User: user, Date: reservation.Date, Description: reservation.Description}

	n.send(ctx, render.EmailKotbarReservation, []string{user.Email}, data, true)
	n.send(ctx, render.EmailKotbarReservationAdmin, n.kotbarAdmins, data, false)
}

// SendMaterialReservation confirms the booking to the resident and informs
// the materiaal mailing list.
func (n *notificationService) SendMaterialReservation(ctx context.Context, user models.User, reservation models.MaterialReservation) {
	data := render.MaterialMailData{User: user, Date: reservation.Date, Items: reservation.ItemNames()}

	n.send(ctx, render.EmailMateriaalReservation, []string{user.Email}, data, true)
	n.send(ctx, render.EmailMateriaalReservationAdmin, n.materiaalAdmins, data, false)
}

func (n *notificationService) send(ctx context.Context, kind render.Email, recipients []string, data any, attach bool) {
	log := logger.FromContext(ctx)

	if n.emails == nil || n.queue == nil {
		log.Warn().Str("func", "*notificationService.send").Str("kind", string(kind)).Msg("mailing not configured, mail skipped")
		return
	}
	if len(recipients) == 0 {
		log.Debug().Str("func", "*notificationService.send").Str("kind", string(kind)).Msg("no recipients, mail skipped")
		return
	}

	mail, err := n.emails.Render(kind, recipients, data)
	if err != nil {
		log.Err(err).Str("func", "*notificationService.send").Str("kind", string(kind)).Msg("rendering mail failed")
		return
	}
	if attach && n.attachment != nil {
		mail.Attachments = append(mail.Attachments, *n.attachment)
	}

	n.queue.Enqueue(ctx, mail)
}

// validFor renders d in whole hours, e.g. "48 uur".
func validFor(d time.Duration) string {
	return fmt.Sprintf("%d uur", int(d.Hours()))
}
