// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/crypto"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/internal/utils"
	"github.com/lerkeveld/underground/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	notifications  NotificationService
	clock          Clock

	// secretKey signs activation and reset links; tokenSignKey signs
	// session JWTs.
	secretKey        string
	tokenSignKey     string
	tokenIssuer      string
	accessDuration   time.Duration
	refreshDuration  time.Duration
	emailTokenMaxAge time.Duration

	// dummyHash is verified against when the email is unknown, so a lookup
	// miss costs as much as a wrong password.
	dummyHash string

	logger *logger.Logger
}

func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	notifications NotificationService,
	clock Clock,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := hasher.Hash("underground-dummy-password")
	if err != nil {
		logger.Warn().Err(err).Msg("could not prepare dummy password hash")
	}

	return &authService{
		userRepository:   userRepository,
		hasher:           hasher,
		notifications:    notifications,
		clock:            clock,
		secretKey:        cfg.App.SecretKey,
		tokenSignKey:     cfg.Auth.TokenSignKey,
		tokenIssuer:      cfg.Auth.TokenIssuer,
		accessDuration:   cfg.Auth.AccessTokenDuration,
		refreshDuration:  cfg.Auth.RefreshTokenDuration,
		emailTokenMaxAge: cfg.Auth.EmailTokenMaxAge,
		dummyHash:        dummyHash,
		logger:           logger,
	}
}

// Authenticate implements AuthService.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(a.dummyHash, password)
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActivated {
		return models.User{}, ErrNotActivated
	}

	return user, nil
}

// IssueSession implements AuthService.
func (a *authService) IssueSession(ctx context.Context, user models.User) (models.Session, error) {
	now := a.clock.Now()

	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, models.AccessToken, a.accessDuration, a.tokenSignKey, now)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, models.RefreshToken, a.refreshDuration, a.tokenSignKey, now)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{Access: access, Refresh: refresh}, nil
}

// Refresh implements AuthService. The account must still exist.
func (a *authService) Refresh(ctx context.Context, userID int64) (models.Token, error) {
	if _, err := a.userRepository.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Token{}, fmt.Errorf("user search by id failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, models.AccessToken, a.accessDuration, a.tokenSignKey, a.clock.Now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken implements AuthService. Every validation failure is reported
// as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string, tokenType models.TokenType) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, tokenType, a.clock.Now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// RequestActivation implements AuthService.
func (a *authService) RequestActivation(ctx context.Context, req models.ActivateRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.findByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user.IsActivated {
		return ErrAlreadyActivated
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err = a.userRepository.UpdatePasswordAndSharing(ctx, user.ID, hash, req.IsSharing); err != nil {
		log.Err(err).Str("func", "*authService.RequestActivation").Int64("user_id", user.ID).Msg("storing password failed")
		return fmt.Errorf("storing password failed: %w", err)
	}
	user.IsSharing = req.IsSharing

	token, err := utils.GenerateSignedToken(user.Email, models.PurposeActivate, a.secretKey, a.emailTokenMaxAge, a.clock.Now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	a.notifications.SendActivation(ctx, user, token)
	return nil
}

// RequestReset implements AuthService.
func (a *authService) RequestReset(ctx context.Context, email string) error {
	user, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.IsActivated {
		return ErrNotActivated
	}

	token, err := utils.GenerateSignedToken(user.Email, models.PurposeReset, a.secretKey, a.emailTokenMaxAge, a.clock.Now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	a.notifications.SendReset(ctx, user, token)
	return nil
}

// Activate implements AuthService. Links stay valid until they expire, so
// activating twice succeeds twice.
func (a *authService) Activate(ctx context.Context, token string) error {
	user, err := a.userFromEmailToken(ctx, token, models.PurposeActivate)
	if err != nil {
		return err
	}

	if err = a.userRepository.SetActivated(ctx, user.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Activate").Int64("user_id", user.ID).Msg("activation failed")
		return fmt.Errorf("activation failed: %w", err)
	}
	return nil
}

// CheckResetToken implements AuthService.
func (a *authService) CheckResetToken(ctx context.Context, token string) (models.User, error) {
	return a.userFromEmailToken(ctx, token, models.PurposeReset)
}

// ResetPassword implements AuthService.
func (a *authService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := a.userFromEmailToken(ctx, token, models.PurposeReset)
	if err != nil {
		return err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err = a.userRepository.UpdateCredentials(ctx, user.ID, "", hash); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ResetPassword").Int64("user_id", user.ID).Msg("password reset failed")
		return fmt.Errorf("password reset failed: %w", err)
	}
	return nil
}

func (a *authService) findByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrEmailNotLinked
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return user, nil
}

func (a *authService) userFromEmailToken(ctx context.Context, token string, purpose models.TokenPurpose) (models.User, error) {
	email, err := utils.ParseSignedToken(token, purpose, a.secretKey, a.clock.Now())
	switch {
	case errors.Is(err, utils.ErrSignedTokenExpired):
		return models.User{}, ErrEmailTokenExpired
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailTokenInvalid, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrEmailTokenInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
