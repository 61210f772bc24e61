// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user is created or renamed to
	// an email address that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	ErrGroupAlreadyExists = errors.New("group already exists")
	ErrGroupNotFound      = errors.New("group was not found")

	ErrOrderDateNotFound      = errors.New("order date was not found")
	ErrOrderDateAlreadyExists = errors.New("order date already exists")
	ErrBreadTypeAlreadyExists = errors.New("bread type already exists")

	// ErrDateAlreadyBooked is returned when the kotbar is already reserved on
	// the requested date.
	ErrDateAlreadyBooked = errors.New("date is already booked")

	// ErrItemAlreadyBooked is returned when one of the requested material
	// items is already reserved on the requested date.
	ErrItemAlreadyBooked = errors.New("item is already booked")

	ErrMaterialTypeAlreadyExists = errors.New("material type already exists")

	// ErrReservationNotFound is returned when no reservation has the given id.
	ErrReservationNotFound = errors.New("reservation was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRow  = errors.New("failed to scan row")
	ErrScanningRows = errors.New("failed to scan rows")
)
