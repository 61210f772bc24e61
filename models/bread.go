// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EditableLeadDays is the number of days before an order date after which
// orders for it are frozen.
const EditableLeadDays = 2

// BreadType is an orderable bread item. Price is in euro cents.
type BreadType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OrderDate is a day on which bread can be delivered.
type OrderDate struct {
	ID       int64 `json:"id"`
	Date     Date  `json:"date"`
	IsActive bool  `json:"is_active"`
}

// Editable reports whether orders for the date may still change on today:
// the date is active and lies strictly more than EditableLeadDays ahead.
func (o OrderDate) Editable(today Date) bool {
	return o.IsActive && o.Date.DaysSince(today) > EditableLeadDays
}

// Order is one bread item ordered by a user for an order date.
type Order struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"-"`
	DateID int64     `json:"-"`
	Type   BreadType `json:"-"`
}

// OrderLine is the JSON shape of an order inside a date listing.
type OrderLine struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// OrderDateWithOrders is an order date merged with one user's orders.
type OrderDateWithOrders struct {
	ID         int64       `json:"id"`
	Date       Date        `json:"date"`
	IsActive   bool        `json:"is_active"`
	IsEditable bool        `json:"is_editable"`
	Orders     []OrderLine `json:"orders"`
	TotalPrice int64       `json:"total_price"`
}

// BreadReportRow is one (user, bread type) line of the delivery report.
type BreadReportRow struct {
	FirstName string
	LastName  string
	Corridor  string
	Room      *int
	BreadType string
	Amount    int
}

// BreadTotalRow is the number of ordered items of one bread type.
type BreadTotalRow struct {
	TypeID int64
	Name   string
	Amount int
}

// BreadReport is the delivery overview for one order date.
type BreadReport struct {
	OrderDate OrderDate
	Rows      []BreadReportRow
	Totals    []BreadTotalRow
}
