// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing secret key or an unknown
	// timezone.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates a missing sign key or non-positive
	// token lifetimes.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidMailConfigs indicates an SMTP host without a sender.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker count or
	// queue size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
