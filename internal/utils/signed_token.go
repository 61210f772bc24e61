// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lerkeveld/underground/models"
)

var (
	// ErrSignedTokenExpired is returned for a correctly signed token older
	// than the allowed age.
	ErrSignedTokenExpired = errors.New("signed token expired")

	// ErrSignedTokenInvalid is returned for tampered, malformed or
	// wrong-purpose tokens.
	ErrSignedTokenInvalid = errors.New("signed token invalid")
)

// signedTokenSalt maps a purpose to the salt its signing key is derived with.
func signedTokenSalt(purpose models.TokenPurpose) string {
	return "token-" + string(purpose)
}

// GenerateSignedToken returns a URL-safe token carrying email, signed with a
// key derived from secret and purpose. The token expires maxAge after now.
func GenerateSignedToken(email string, purpose models.TokenPurpose, secret string, maxAge time.Duration, now time.Time) (string, error) {
	if email == "" || purpose == "" || secret == "" || maxAge <= 0 {
		return "", errors.New("invalid params for generating signed token")
	}

	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString(DeriveKey(secret, signedTokenSalt(purpose)))
	if err != nil {
		return "", fmt.Errorf("error signing %s token: %w", purpose, err)
	}

	return token, nil
}

// ParseSignedToken verifies a token produced by [GenerateSignedToken] for
// the same purpose and returns the embedded email.
func ParseSignedToken(token string, purpose models.TokenPurpose, secret string, now time.Time) (string, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return DeriveKey(secret, signedTokenSalt(purpose)), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrSignedTokenExpired
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrSignedTokenInvalid, err)
	case claims.Subject == "":
		return "", ErrSignedTokenInvalid
	}

	return claims.Subject, nil
}
