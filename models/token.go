// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes the two session tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// TokenPurpose salts email tokens so that a token minted for one flow is
// rejected by every other flow.
type TokenPurpose string

const (
	PurposeActivate TokenPurpose = "activate"
	PurposeReset    TokenPurpose = "reset"
)

// Token is a session JWT and its claims.
//
// It doubles as the [jwt.Claims] implementation used when parsing, so the
// registered claims are embedded and the custom claims carry JSON tags.
// CSRF is a random value bound to the token; mutating requests must echo it
// in the X-CSRF-TOKEN header.
type Token struct {
	jwt.RegisteredClaims

	Type TokenType `json:"typ"`
	CSRF string    `json:"csrf"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the pair of tokens handed out on login.
type Session struct {
	Access  Token
	Refresh Token
}
