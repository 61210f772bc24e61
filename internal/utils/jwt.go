// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lerkeveld/underground/models"
)

// ErrWrongTokenType is returned when a valid token of one type is presented
// where the other type is required.
var ErrWrongTokenType = errors.New("wrong token type")

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following claims:
//   - iss: identifies the service that issued the token
//   - sub: the user ID encoded as a string
//   - iat, exp: now and now plus tokenDuration
//   - jti: a random token id
//   - typ: access or refresh
//   - csrf: a random value the client must echo in X-CSRF-TOKEN
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
//	token, err := utils.GenerateJWTToken("underground", 42, models.AccessToken, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, userID int64, tokenType models.TokenType, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenType == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        NewID(),
		},
		Type: tokenType,
		CSRF: uuid.NewString(),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	claims.SignedString = tokenString
	claims.UserID = userID

	return claims, nil
}

// ValidateAndParseJWTToken validates the given session token and extracts
// its claims.
//
// Validation includes:
//   - HS256 signature verification using tokenSignKey
//   - iss must equal tokenIssuer
//   - exp must be present and after now
//   - typ must equal tokenType
//   - sub must be a decimal user ID
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, tokenType models.TokenType, now time.Time) (models.Token, error) {
	var claims models.Token

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Type != tokenType {
		return models.Token{}, fmt.Errorf("%w: expected %s, got %q", ErrWrongTokenType, tokenType, claims.Type)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	claims.SignedString = tokenString
	claims.UserID = userID

	return claims, nil
}
