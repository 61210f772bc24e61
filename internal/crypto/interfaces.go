// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential primitives of the server: argon2id
// password hashing and random password generation.
package crypto

// PasswordHasher hashes and verifies user passwords.
//
// Hash output is a self-describing PHC string
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash), so parameters can change
// between deployments without invalidating stored hashes.
type PasswordHasher interface {
	// Hash derives a fresh salted hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. Malformed or
	// unsupported hashes never verify.
	Verify(encoded, password string) bool
}
