// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotActivated       = errors.New("account is not activated")
	ErrAlreadyActivated   = errors.New("account is already activated")
	// ErrEmailNotLinked is returned when no account uses the given email.
	ErrEmailNotLinked = errors.New("email is not linked to an account")
	// ErrWrongPassword is returned when the current password given to
	// confirm a credential change does not match.
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrEmailTokenExpired and ErrEmailTokenInvalid classify activation
	// and reset links.
	ErrEmailTokenExpired = errors.New("email token expired")
	ErrEmailTokenInvalid = errors.New("email token invalid")

	ErrNotEditable       = errors.New("order date is not editable")
	ErrDateOutOfRange    = errors.New("date is out of range")
	ErrUnknownItem       = errors.New("items contains an unknown item")
	ErrDuplicateItems    = errors.New("items contains duplicate entries")
	ErrPreviouslyBooked  = errors.New("items contains a previously booked item")
	ErrForbidden         = errors.New("reservation belongs to another user")
	ErrInvalidAdminToken = errors.New("invalid admin token")
)

// FieldError ties a rule violation detected by a service to the request
// field it concerns, so it can be reported next to validation errors.
type FieldError struct {
	Field string
	Err   error
}

func newFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
