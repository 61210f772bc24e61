// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/lerkeveld/underground/models"
)

// Clock answers "what day is it" in the residence hall's time zone.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a clock reading now in loc. A nil now means time.Now and
// a nil loc means UTC.
func NewClock(now func() time.Time, loc *time.Location) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return Clock{now: now, loc: loc}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// Today is the current calendar day in the clock's location.
func (c Clock) Today() models.Date {
	loc := c.loc
	if loc == nil {
		loc = time.UTC
	}
	return models.DateOf(c.Now().In(loc))
}

// TermStart is 1 September of the current year from September on and
// 1 January before that.
func (c Clock) TermStart() models.Date {
	today := c.Today()
	if today.Month() >= time.September {
		return models.NewDate(today.Year(), time.September, 1)
	}
	return models.NewDate(today.Year(), time.January, 1)
}
