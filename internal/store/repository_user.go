// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
)

// userRepository is the SQL implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user     models.User
		room     sql.NullInt64
		isMember sql.NullBool
	)

	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone, &user.Corridor, &room,
		&user.IsAdmin, &user.IsActivated, &user.IsSharing, &isMember, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if room.Valid {
		r := int(room.Int64)
		user.Room = &r
	}
	if isMember.Valid {
		m := isMember.Bool
		user.IsMember = &m
	}

	return user, nil
}

func nullableRoom(room *int) sql.NullInt64 {
	if room == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*room), Valid: true}
}

func nullableBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

// CreateUser persists a new user and returns it with the server-assigned ID
// and CreatedAt. The email is stored lowercase.
//
// A unique violation on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.ToLower(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	err := r.db.QueryRowContext(ctx, r.db.rebind(createUser),
		user.FirstName, user.LastName, user.Email, user.Phone, user.Corridor, nullableRoom(user.Room),
		user.IsAdmin, user.IsActivated, user.IsSharing, nullableBool(user.IsMember), user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByEmail looks the email up case-insensitively.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, strings.ToLower(email))
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, r.db.rebind(query), arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, r.db.rebind(emailExists), strings.ToLower(email)).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.EmailExists").Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// ListUsers returns every user ordered by first and last name.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateProfile writes the non-nil fields of update. An empty update is a
// no-op; an unknown user yields [ErrUserNotFound].
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	query, args, ok, err := buildUpdateProfileQuery(r.db.builder, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if !ok {
		return nil
	}

	return r.execOnUser(ctx, "*userRepository.UpdateProfile", userID, query, args...)
}

// UpdateCredentials changes the email and/or password hash of the user.
// Empty values are left untouched.
func (r *userRepository) UpdateCredentials(ctx context.Context, userID int64, email, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, ok, err := buildUpdateCredentialsQuery(r.db.builder, userID, strings.ToLower(email), passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if !ok {
		return nil
	}

	err = r.execOnUser(ctx, "*userRepository.UpdateCredentials", userID, query, args...)
	if r.db.isUniqueViolation(err) {
		return ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) UpdatePasswordAndSharing(ctx context.Context, userID int64, passwordHash string, isSharing bool) error {
	return r.execOnUser(ctx, "*userRepository.UpdatePasswordAndSharing", userID,
		r.db.rebind(updatePasswordAndSharing), passwordHash, isSharing, userID)
}

func (r *userRepository) SetActivated(ctx context.Context, userID int64) error {
	return r.execOnUser(ctx, "*userRepository.SetActivated", userID, r.db.rebind(setActivated), true, userID)
}

// execOnUser executes an UPDATE targeting a single user and reports
// [ErrUserNotFound] when no row was affected.
func (r *userRepository) execOnUser(ctx context.Context, funcName string, userID int64, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CreateGroup adds a group. A duplicate name yields [ErrGroupAlreadyExists].
func (r *userRepository) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	log := logger.FromContext(ctx)

	group := models.Group{Name: name}
	err := r.db.QueryRowContext(ctx, r.db.rebind(createGroup), name).Scan(&group.ID)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Group{}, ErrGroupAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateGroup").Msg("error inserting group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return group, nil
}

// AddUserToGroup links the user to the named group. Adding a member twice is
// not an error.
func (r *userRepository) AddUserToGroup(ctx context.Context, userID int64, groupName string) error {
	log := logger.FromContext(ctx)

	var groupID int64
	err := r.db.QueryRowContext(ctx, r.db.rebind(findGroupByName), groupName).Scan(&groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGroupNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddUserToGroup").Msg("error selecting group")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, r.db.rebind(addUserToGroup), userID, groupID); err != nil {
		if r.db.isUniqueViolation(err) {
			return nil
		}
		log.Err(err).Str("func", "*userRepository.AddUserToGroup").Msg("error linking user to group")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListUserGroups returns the names of the user's groups in alphabetical order.
func (r *userRepository) ListUserGroups(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.db.rebind(listUserGroups), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUserGroups").Msg("error selecting groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		groups = append(groups, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return groups, nil
}
