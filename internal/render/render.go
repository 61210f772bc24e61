// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns embedded templates into the server-rendered token
// pages and the outgoing notification mails.
package render

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/lerkeveld/underground/models"
)

//go:embed templates
var templateFS embed.FS

var dutchWeekdays = [...]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"}

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// LongDate formats d the way residents read dates: "maandag 20 oktober 2025".
func LongDate(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d %s %d", dutchWeekdays[d.Weekday()], d.Day(), dutchMonths[d.Month()-1], d.Year())
}

// Euro formats an amount in cents as "€ 1,80".
func Euro(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s€ %d,%02d", sign, cents/100, cents%100)
}

func room(r *int) string {
	if r == nil {
		return ""
	}
	return strconv.Itoa(*r)
}

// funcs is shared by the html and text template sets.
func funcs() map[string]any {
	return map[string]any{
		"longDate": LongDate,
		"euro":     Euro,
		"room":     room,
		"join":     strings.Join,
	}
}
