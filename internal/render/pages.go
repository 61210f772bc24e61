// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/lerkeveld/underground/models"
)

// Page names a server-rendered page.
type Page string

const (
	PageActivation     Page = "activation"
	PageFailure        Page = "failure"
	PageTimeout        Page = "timeout"
	PageReset          Page = "reset"
	PageResetSuccess   Page = "reset_success"
	PageKotbarOverview Page = "kotbar_overview"
	PageBreadOverview  Page = "bread_overview"
)

var allPages = []Page{
	PageActivation,
	PageFailure,
	PageTimeout,
	PageReset,
	PageResetSuccess,
	PageKotbarOverview,
	PageBreadOverview,
}

// LinkData is the payload of the pages that only point back to the site.
type LinkData struct {
	BaseURL string
}

// ResetData is the payload of the password reset form. Action is the URL the
// form posts to; Errors are shown above the form.
type ResetData struct {
	Email  string
	Action string
	Errors []string
}

// KotbarOverviewData lists the kotbar bookings from From onwards.
type KotbarOverviewData struct {
	From         models.Date
	Reservations []models.KotbarReservation
}

// BreadOverviewData is the delivery report of one order date.
type BreadOverviewData struct {
	Report models.BreadReport
}

// Pages renders the token pages. Every page is parsed together with the
// shared base layout and executed through it.
type Pages struct {
	templates map[Page]*template.Template
}

// NewPages parses all embedded page templates.
func NewPages() (*Pages, error) {
	pages := &Pages{templates: make(map[Page]*template.Template, len(allPages))}

	for _, page := range allPages {
		tmpl, err := template.New("base").Funcs(funcs()).ParseFS(templateFS,
			"templates/pages/base.html",
			"templates/pages/"+string(page)+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing page %q: %w", page, err)
		}
		pages.templates[page] = tmpl
	}

	return pages, nil
}

// Render writes page to w. The page is rendered into a buffer first so a
// template error never leaves a half-written response.
func (p *Pages) Render(w io.Writer, page Page, data any) error {
	tmpl, ok := p.templates[page]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("error rendering page %q: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
