// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
)

// materialRepository is the SQL implementation of [MaterialRepository].
//
// Reservation items repeat the reservation date and are UNIQUE on
// (material_type_id, date).
type materialRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMaterialRepository(db *DB, logger *logger.Logger) MaterialRepository {
	logger.Debug().Msg("creating material repository")
	return &materialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *materialRepository) ListMaterialTypes(ctx context.Context) ([]models.MaterialType, error) {
	return r.queryMaterialTypes(ctx, "*materialRepository.ListMaterialTypes", listMaterialTypes)
}

func (r *materialRepository) FindMaterialTypesByName(ctx context.Context, names []string) ([]models.MaterialType, error) {
	if len(names) == 0 {
		return []models.MaterialType{}, nil
	}

	query, args, err := buildFindByNamesQuery(r.db.builder, "material_types", []string{"id", "name"}, names)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*materialRepository.FindMaterialTypesByName").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMaterialTypes(ctx, "*materialRepository.FindMaterialTypesByName", query, args...)
}

func (r *materialRepository) BookedItemsOn(ctx context.Context, date models.Date) ([]models.MaterialType, error) {
	return r.queryMaterialTypes(ctx, "*materialRepository.BookedItemsOn", r.db.rebind(bookedMaterialItemsOn), date)
}

func (r *materialRepository) queryMaterialTypes(ctx context.Context, funcName, query string, args ...any) ([]models.MaterialType, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting material types")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	types := make([]models.MaterialType, 0)
	for rows.Next() {
		var t models.MaterialType
		if err = rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		types = append(types, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return types, nil
}

func (r *materialRepository) CreateMaterialType(ctx context.Context, name string) (models.MaterialType, error) {
	log := logger.FromContext(ctx)

	t := models.MaterialType{Name: name}
	if err := r.db.QueryRowContext(ctx, r.db.rebind(createMaterialType), name).Scan(&t.ID); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.MaterialType{}, ErrMaterialTypeAlreadyExists
		}
		log.Err(err).Str("func", "*materialRepository.CreateMaterialType").Msg("error inserting material type")
		return models.MaterialType{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return t, nil
}

// CreateReservation inserts the reservation and its items in one
// transaction. If any item is already booked on the date nothing is written
// and [ErrItemAlreadyBooked] is returned.
func (r *materialRepository) CreateReservation(ctx context.Context, reservation models.MaterialReservation) (models.MaterialReservation, error) {
	log := logger.FromContext(ctx)

	if reservation.CreatedAt.IsZero() {
		reservation.CreatedAt = time.Now().UTC()
	}

	insertItem := r.db.rebind(insertMaterialReservationItem)
	err := r.db.withTx(ctx, "*materialRepository.CreateReservation", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, r.db.rebind(createMaterialReservation), reservation.UserID, reservation.Date, reservation.CreatedAt).
			Scan(&reservation.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for _, item := range reservation.Items {
			if _, err = tx.ExecContext(ctx, insertItem, reservation.ID, item.ID, reservation.Date); err != nil {
				if r.db.isUniqueViolation(err) {
					return ErrItemAlreadyBooked
				}
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*materialRepository.CreateReservation").Int64("user_id", reservation.UserID).Msg("error creating reservation")
		return models.MaterialReservation{}, err
	}

	return reservation, nil
}

func (r *materialRepository) ListReservationsAfter(ctx context.Context, after models.Date) ([]models.MaterialReservation, error) {
	return r.queryReservations(ctx, "*materialRepository.ListReservationsAfter", sq.Gt{"r.date": after})
}

func (r *materialRepository) FindReservation(ctx context.Context, id int64) (models.MaterialReservation, error) {
	reservations, err := r.queryReservations(ctx, "*materialRepository.FindReservation", sq.Eq{"r.id": id})
	if err != nil {
		return models.MaterialReservation{}, err
	}
	if len(reservations) == 0 {
		return models.MaterialReservation{}, ErrReservationNotFound
	}

	return reservations[0], nil
}

// queryReservations folds the one-row-per-item result set back into
// reservations, keeping the query order.
func (r *materialRepository) queryReservations(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.MaterialReservation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMaterialReservationsQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting reservations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reservations := make([]models.MaterialReservation, 0)
	for rows.Next() {
		var (
			m                   models.MaterialReservation
			firstName, lastName string
			itemID              sql.NullInt64
			itemName            sql.NullString
		)
		if err = rows.Scan(&m.ID, &m.UserID, &firstName, &lastName, &m.UserEmail, &m.Date, &m.CreatedAt, &itemID, &itemName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if n := len(reservations); n == 0 || reservations[n-1].ID != m.ID {
			m.UserName = models.User{FirstName: firstName, LastName: lastName}.FullName()
			m.Items = make([]models.MaterialType, 0)
			reservations = append(reservations, m)
		}
		if itemID.Valid {
			last := &reservations[len(reservations)-1]
			last.Items = append(last.Items, models.MaterialType{ID: itemID.Int64, Name: itemName.String})
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reservations, nil
}

// DeleteReservation removes the reservation and its items.
func (r *materialRepository) DeleteReservation(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, "*materialRepository.DeleteReservation", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.db.rebind(deleteMaterialReservationItems), id); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		result, err := tx.ExecContext(ctx, r.db.rebind(deleteMaterialReservation), id)
		if err != nil {
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
	})
	if err != nil && !errors.Is(err, ErrReservationNotFound) {
		log.Err(err).Str("func", "*materialRepository.DeleteReservation").Int64("id", id).Msg("error deleting reservation")
	}

	return err
}
