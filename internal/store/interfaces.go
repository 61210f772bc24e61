// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/lerkeveld/underground/models"
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists residents and their groups.
//
// Emails are compared and stored lowercase.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateProfile writes only the non-nil fields of update.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error
	// UpdateCredentials writes the non-empty values among email and passwordHash.
	UpdateCredentials(ctx context.Context, userID int64, email, passwordHash string) error
	UpdatePasswordAndSharing(ctx context.Context, userID int64, passwordHash string, isSharing bool) error
	SetActivated(ctx context.Context, userID int64) error

	CreateGroup(ctx context.Context, name string) (models.Group, error)
	AddUserToGroup(ctx context.Context, userID int64, groupName string) error
	ListUserGroups(ctx context.Context, userID int64) ([]string, error)
}

// BreadRepository persists order dates, the bread catalog and orders.
type BreadRepository interface {
	// ListOrderDatesAfter returns the order dates strictly after the given
	// date, oldest first.
	ListOrderDatesAfter(ctx context.Context, after models.Date) ([]models.OrderDate, error)
	FindOrderDate(ctx context.Context, dateID int64) (models.OrderDate, error)
	FindOrderDateByDate(ctx context.Context, date models.Date) (models.OrderDate, error)
	// FindNextOrderDate returns the first order date on or after from.
	FindNextOrderDate(ctx context.Context, from models.Date) (models.OrderDate, error)
	CreateOrderDate(ctx context.Context, date models.Date, active bool) (models.OrderDate, error)
	SetOrderDateActive(ctx context.Context, date models.Date, active bool) error

	ListBreadTypes(ctx context.Context) ([]models.BreadType, error)
	// FindBreadTypesByName returns the catalog entries matching names, each
	// entry at most once.
	FindBreadTypesByName(ctx context.Context, names []string) ([]models.BreadType, error)
	CreateBreadType(ctx context.Context, name string, price int64) (models.BreadType, error)

	// ListUserOrdersAfter returns the user's orders on dates strictly after
	// the given date.
	ListUserOrdersAfter(ctx context.Context, userID int64, after models.Date) ([]models.Order, error)
	// AddOrders inserts one order per (date, type) pair in a single
	// transaction. Duplicate type ids produce duplicate orders.
	AddOrders(ctx context.Context, userID int64, dateIDs []int64, typeIDs []int64) error
	// DeleteUserOrders removes the user's orders on the given dates in a
	// single transaction and returns the number of removed orders.
	DeleteUserOrders(ctx context.Context, userID int64, dateIDs []int64) (int64, error)

	ReportRows(ctx context.Context, dateID int64) ([]models.BreadReportRow, error)
	ReportTotals(ctx context.Context, dateID int64) ([]models.BreadTotalRow, error)
}

// KotbarRepository persists kotbar bookings. At most one booking exists per
// date.
type KotbarRepository interface {
	CreateReservation(ctx context.Context, reservation models.KotbarReservation) (models.KotbarReservation, error)
	IsBooked(ctx context.Context, date models.Date) (bool, error)
	// ListReservationsAfter returns bookings strictly after the given date,
	// newest first.
	ListReservationsAfter(ctx context.Context, after models.Date) ([]models.KotbarReservation, error)
	FindReservation(ctx context.Context, id int64) (models.KotbarReservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

// MaterialRepository persists the material catalog and material bookings.
// An item is booked at most once per date.
type MaterialRepository interface {
	ListMaterialTypes(ctx context.Context) ([]models.MaterialType, error)
	FindMaterialTypesByName(ctx context.Context, names []string) ([]models.MaterialType, error)
	CreateMaterialType(ctx context.Context, name string) (models.MaterialType, error)
	// BookedItemsOn returns the items reserved on date by any reservation.
	BookedItemsOn(ctx context.Context, date models.Date) ([]models.MaterialType, error)

	CreateReservation(ctx context.Context, reservation models.MaterialReservation) (models.MaterialReservation, error)
	ListReservationsAfter(ctx context.Context, after models.Date) ([]models.MaterialReservation, error)
	FindReservation(ctx context.Context, id int64) (models.MaterialReservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}
