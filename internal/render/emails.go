// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/lerkeveld/underground/models"
)

// ErrUnknownTemplate is returned when rendering a page or mail that was
// never registered.
var ErrUnknownTemplate = errors.New("unknown template")

// Email names a notification mail.
type Email string

const (
	EmailActivation                Email = "activation"
	EmailReset                     Email = "reset"
	EmailKotbarReservation         Email = "kotbar_reservation"
	EmailKotbarReservationAdmin    Email = "kotbar_reservation_admin"
	EmailMateriaalReservation      Email = "materiaal_reservation"
	EmailMateriaalReservationAdmin Email = "materiaal_reservation_admin"
)

const subjectPrefix = "Lerkeveld Underground - "

var subjects = map[Email]string{
	EmailActivation:                subjectPrefix + "Activeer Account",
	EmailReset:                     subjectPrefix + "Reset Wachtwoord",
	EmailKotbarReservation:         subjectPrefix + "Bevestiging Reservatie",
	EmailKotbarReservationAdmin:    subjectPrefix + "Reservatie Kotbar",
	EmailMateriaalReservation:      subjectPrefix + "Bevestiging Reservatie",
	EmailMateriaalReservationAdmin: subjectPrefix + "Reservatie Materiaal",
}

// TokenMailData is the payload of the activation and reset mails.
type TokenMailData struct {
	User     models.User
	URL      string
	ValidFor string
}

// KotbarMailData is the payload of both kotbar reservation mails.
type KotbarMailData struct {
	User        models.User
	Date        models.Date
	Description string
}

// MaterialMailData is the payload of both materiaal reservation mails.
type MaterialMailData struct {
	User  models.User
	Date  models.Date
	Items []string
}

type emailTemplates struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// Emails renders notification mails: a subject, a plain text body and an
// HTML body per kind.
type Emails struct {
	templates map[Email]emailTemplates
}

// NewEmails parses all embedded mail templates.
func NewEmails() (*Emails, error) {
	emails := &Emails{templates: make(map[Email]emailTemplates, len(subjects))}

	for kind := range subjects {
		base := "templates/emails/" + string(kind)

		text, err := texttemplate.New(string(kind) + ".txt").Funcs(funcs()).ParseFS(templateFS, base+".txt")
		if err != nil {
			return nil, fmt.Errorf("error parsing text mail %q: %w", kind, err)
		}
		html, err := htmltemplate.New(string(kind) + ".html").Funcs(funcs()).ParseFS(templateFS, base+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing html mail %q: %w", kind, err)
		}

		emails.templates[kind] = emailTemplates{text: text, html: html}
	}

	return emails, nil
}

// Render builds the mail of the given kind addressed to recipients.
func (e *Emails) Render(kind Email, recipients []string, data any) (models.Mail, error) {
	tmpl, ok := e.templates[kind]
	if !ok {
		return models.Mail{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}

	var text, html bytes.Buffer
	if err := tmpl.text.Execute(&text, data); err != nil {
		return models.Mail{}, fmt.Errorf("error rendering text mail %q: %w", kind, err)
	}
	if err := tmpl.html.Execute(&html, data); err != nil {
		return models.Mail{}, fmt.Errorf("error rendering html mail %q: %w", kind, err)
	}

	return models.Mail{
		To:      recipients,
		Subject: subjects[kind],
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
