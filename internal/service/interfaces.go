// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the residence hall: session
// and email-token authentication, profiles, the bread order schedule,
// kotbar and materiaal bookings and the notification mails they trigger.
package service

import (
	"context"

	"github.com/lerkeveld/underground/internal/render"
	"github.com/lerkeveld/underground/models"
)

type AuthService interface {
	// Authenticate returns the user owning email and password. Unknown
	// emails and wrong passwords both yield ErrInvalidCredentials; a
	// correct password on an inactive account yields ErrNotActivated.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	IssueSession(ctx context.Context, user models.User) (models.Session, error)
	// Refresh issues a new access token for the owner of a refresh token.
	Refresh(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string, tokenType models.TokenType) (models.Token, error)

	// RequestActivation stores the chosen password and sharing preference
	// of an inactive account and mails it an activation link.
	RequestActivation(ctx context.Context, req models.ActivateRequest) error
	RequestReset(ctx context.Context, email string) error
	Activate(ctx context.Context, token string) error
	CheckResetToken(ctx context.Context, token string) (models.User, error)
	ResetPassword(ctx context.Context, token, password string) error
}

type UserService interface {
	// CreateUser stores a new account. An empty password is replaced by a
	// random one, which is returned.
	CreateUser(ctx context.Context, user models.User, password string) (models.User, string, error)
	CreateGroup(ctx context.Context, name string) (models.Group, error)
	AddUserToGroup(ctx context.Context, email, group string) error

	Profile(ctx context.Context, userID int64) (models.User, error)
	Roster(ctx context.Context) ([]models.RosterEntry, error)
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileEditRequest) error
	UpdateCredentials(ctx context.Context, userID int64, req models.SecureEditRequest) error
}

type BreadService interface {
	// ListOrderDates returns every order date of the current term merged
	// with the user's orders on it.
	ListOrderDates(ctx context.Context, userID int64) ([]models.OrderDateWithOrders, error)
	AddOrders(ctx context.Context, userID, dateID int64, items []string) error
	// AddOrdersAfter orders items on every editable date after the given
	// date and silently skips the others.
	AddOrdersAfter(ctx context.Context, userID int64, after models.Date, items []string) error
	DeleteOrdersOn(ctx context.Context, userID, dateID int64) error
	DeleteOrdersAfter(ctx context.Context, userID int64, after models.Date) error
	BreadTypes(ctx context.Context) ([]models.BreadType, error)

	WeeklyReport(ctx context.Context, dateID int64) (models.BreadReport, error)
	// ReportForDate reports on the order date on date, or on the next
	// upcoming order date when date is zero.
	ReportForDate(ctx context.Context, date models.Date) (models.BreadReport, error)

	CreateOrderDate(ctx context.Context, date models.Date, active bool) (models.OrderDate, error)
	SetOrderDateActive(ctx context.Context, date models.Date, active bool) error
	CreateBreadType(ctx context.Context, name string, price int64) (models.BreadType, error)

	Today() models.Date
}

type KotbarService interface {
	Reserve(ctx context.Context, userID int64, req models.KotbarReserveRequest) (models.KotbarReservation, error)
	// List returns the bookings from today on, newest first, each marked
	// when owned by userID.
	List(ctx context.Context, userID int64) ([]models.KotbarReservationView, error)
	// Upcoming returns today and the bookings from today on.
	Upcoming(ctx context.Context) (models.Date, []models.KotbarReservation, error)
	Delete(ctx context.Context, userID, reservationID int64) error
}

type MaterialService interface {
	Reserve(ctx context.Context, userID int64, req models.MaterialReserveRequest) (models.MaterialReservation, error)
	List(ctx context.Context, userID int64) ([]models.MaterialReservationView, error)
	Delete(ctx context.Context, userID, reservationID int64) error
	MaterialTypes(ctx context.Context) ([]models.MaterialType, error)
	CreateMaterialType(ctx context.Context, name string) (models.MaterialType, error)
}

// NotificationService renders and queues mails. Delivery problems are
// logged and never reported to the caller.
type NotificationService interface {
	SendActivation(ctx context.Context, user models.User, token string)
	SendReset(ctx context.Context, user models.User, token string)
	SendKotbarReservation(ctx context.Context, user models.User, reservation models.KotbarReservation)
	SendMaterialReservation(ctx context.Context, user models.User, reservation models.MaterialReservation)
}

type AdminService interface {
	CheckAdminToken(token string) bool
}

// MailRenderer is implemented by *render.Emails.
type MailRenderer interface {
	Render(kind render.Email, recipients []string, data any) (models.Mail, error)
}

// MailQueue is implemented by *workers.MailQueue.
type MailQueue interface {
	Enqueue(ctx context.Context, mail models.Mail) bool
}
