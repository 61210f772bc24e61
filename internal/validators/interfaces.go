// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Validation here is structural: shapes, lengths and formats of request
// bodies. Rules that need the database (unknown catalog names, booked dates)
// live in the service layer.
//
// Failures are returned as ozzo-validation Errors, keyed by the
// JSON field name, so handlers can render them as field messages.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
