// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
)

// kotbarRepository is the SQL implementation of [KotbarRepository].
// kotbar_reservations.date is UNIQUE, so of two concurrent bookings for one
// date the second insert fails.
type kotbarRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewKotbarRepository(db *DB, logger *logger.Logger) KotbarRepository {
	logger.Debug().Msg("creating kotbar repository")
	return &kotbarRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReservation books the kotbar. A booking on a taken date yields
// [ErrDateAlreadyBooked].
func (r *kotbarRepository) CreateReservation(ctx context.Context, reservation models.KotbarReservation) (models.KotbarReservation, error) {
	log := logger.FromContext(ctx)

	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = time.Now().UTC()
	}

	err := r.db.QueryRowContext(ctx, r.db.rebind(createKotbarReservation),
		reservation.UserID, reservation.Date, reservation.Description, reservation.CreatedAt,
	).Scan(&reservation.ID)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("func", "*kotbarRepository.CreateReservation").Str("date", reservation.Date.String()).Msg("date already booked")
			return models.KotbarReservation{}, ErrDateAlreadyBooked
		}
		log.Err(err).Str("func", "*kotbarRepository.CreateReservation").Msg("error inserting reservation")
		return models.KotbarReservation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reservation, nil
}

func (r *kotbarRepository) IsBooked(ctx context.Context, date models.Date) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, r.db.rebind(kotbarIsBooked), date).Scan(&count); err != nil {
		log.Err(err).Str("func", "*kotbarRepository.IsBooked").Msg("error counting reservations")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func scanKotbarReservation(row rowScanner) (models.KotbarReservation, error) {
	var (
		k                   models.KotbarReservation
		firstName, lastName string
	)
	if err := row.Scan(&k.ID, &k.UserID, &firstName, &lastName, &k.UserEmail, &k.Date, &k.Description, &k.CreatedAt); err != nil {
		return models.KotbarReservation{}, err
	}
	k.UserName = models.User{FirstName: firstName, LastName: lastName}.FullName()
	return k, nil
}

func (r *kotbarRepository) ListReservationsAfter(ctx context.Context, after models.Date) ([]models.KotbarReservation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.db.rebind(listKotbarReservationsAfter), after)
	if err != nil {
		log.Err(err).Str("func", "*kotbarRepository.ListReservationsAfter").Msg("error selecting reservations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reservations := make([]models.KotbarReservation, 0)
	for rows.Next() {
		k, err := scanKotbarReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reservations = append(reservations, k)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reservations, nil
}

func (r *kotbarRepository) FindReservation(ctx context.Context, id int64) (models.KotbarReservation, error) {
	log := logger.FromContext(ctx)

	k, err := scanKotbarReservation(r.db.QueryRowContext(ctx, r.db.rebind(findKotbarReservation), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.KotbarReservation{}, ErrReservationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*kotbarRepository.FindReservation").Msg("error selecting reservation")
		return models.KotbarReservation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return k, nil
}

func (r *kotbarRepository) DeleteReservation(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, r.db.rebind(deleteKotbarReservation), id)
	if err != nil {
		log.Err(err).Str("func", "*kotbarRepository.DeleteReservation").Msg("error deleting reservation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}
