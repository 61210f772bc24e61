// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// KotbarMaxDaysAhead is how far in advance the kotbar can be booked.
const KotbarMaxDaysAhead = 101

// KotbarReservation books the shared bar for one date.
type KotbarReservation struct {
	ID          int64
	UserID      int64
	UserName    string
	UserEmail   string
	Date        Date
	Description string
	CreatedAt   time.Time
}

// MaterialType is a piece of shared equipment.
type MaterialType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MaterialReservation books one or more material items for one date.
type MaterialReservation struct {
	ID        int64
	UserID    int64
	UserName  string
	UserEmail string
	Date      Date
	Items     []MaterialType
	CreatedAt time.Time
}

// ItemNames returns the names of the reserved items in order.
func (m MaterialReservation) ItemNames() []string {
	names := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		names = append(names, item.Name)
	}
	return names
}

// KotbarReservationView is the JSON shape of a kotbar booking in a listing.
type KotbarReservationView struct {
	ID          int64  `json:"id"`
	UserName    string `json:"username"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	Own         bool   `json:"own"`
}

// MaterialReservationView is the JSON shape of a material booking in a listing.
type MaterialReservationView struct {
	ID       int64          `json:"id"`
	UserName string         `json:"username"`
	Date     Date           `json:"date"`
	Items    []MaterialType `json:"items"`
	Own      bool           `json:"own"`
}
