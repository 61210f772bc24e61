// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerkeveld/underground/internal/crypto"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// CreateUser implements UserService.
func (s *userService) CreateUser(ctx context.Context, user models.User, password string) (models.User, string, error) {
	if password == "" {
		random, err := crypto.RandomPassword(crypto.RandomPasswordLength)
		if err != nil {
			return models.User{}, "", err
		}
		password = random
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("error hashing password: %w", err)
	}
	user.Email = normalizeEmail(user.Email)
	user.PasswordHash = hash

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.CreateUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, password, nil
}

func (s *userService) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	return s.userRepository.CreateGroup(ctx, name)
}

func (s *userService) AddUserToGroup(ctx context.Context, email, group string) error {
	user, err := s.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	return s.userRepository.AddUserToGroup(ctx, user.ID, group)
}

// Profile implements UserService.
func (s *userService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	groups, err := s.userRepository.ListUserGroups(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	user.Groups = groups

	return user, nil
}

// Roster implements UserService. Only activated residents are listed and
// contact details are only shown for those who share them.
func (s *userService) Roster(ctx context.Context) ([]models.RosterEntry, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]models.RosterEntry, 0, len(users))
	for _, u := range users {
		if !u.IsActivated {
			continue
		}
		entry := models.RosterEntry{
			FullName: u.FullName(),
			Corridor: u.Corridor,
			Room:     u.Room,
		}
		if u.IsSharing {
			entry.Email = u.Email
			entry.Phone = u.Phone
		}
		roster = append(roster, entry)
	}

	return roster, nil
}

// UpdateProfile implements UserService. An empty request is a no-op.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileEditRequest) error {
	update := req.ToUpdate()
	if update.IsEmpty() {
		return nil
	}
	return s.userRepository.UpdateProfile(ctx, userID, update)
}

// UpdateCredentials implements UserService. The current password in
// req.Check must verify before the email or password changes.
func (s *userService) UpdateCredentials(ctx context.Context, userID int64, req models.SecureEditRequest) error {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(user.PasswordHash, req.Check) {
		return newFieldError("check", ErrWrongPassword)
	}

	email := normalizeEmail(req.Email)
	if email == user.Email {
		email = ""
	}

	var hash string
	if req.Password != "" {
		if hash, err = s.hasher.Hash(req.Password); err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
	}

	if email == "" && hash == "" {
		return nil
	}

	err = s.userRepository.UpdateCredentials(ctx, userID, email, hash)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return newFieldError("email", err)
	}
	if err != nil {
		return fmt.Errorf("updating credentials failed: %w", err)
	}
	return nil
}
