// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingSessionCookie is returned by the auth middlewares when the
	// request carries no session cookie of the required type.
	ErrMissingSessionCookie = errors.New("missing session cookie")

	// ErrCSRFMismatch is returned when a mutating request does not echo the
	// CSRF value of its session token in the X-CSRF-TOKEN header.
	ErrCSRFMismatch = errors.New("missing or mismatching CSRF token")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrInvalidID   = errors.New("invalid id in path")
	ErrNoUserID    = errors.New("no user id in request context")
)
