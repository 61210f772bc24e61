// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
)

// breadRepository is the SQL implementation of [BreadRepository].
type breadRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBreadRepository(db *DB, logger *logger.Logger) BreadRepository {
	logger.Debug().Msg("creating bread repository")
	return &breadRepository{
		db:     db,
		logger: logger,
	}
}

func (r *breadRepository) ListOrderDatesAfter(ctx context.Context, after models.Date) ([]models.OrderDate, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.db.rebind(listOrderDatesAfter), after)
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.ListOrderDatesAfter").Msg("error selecting order dates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dates := make([]models.OrderDate, 0)
	for rows.Next() {
		var d models.OrderDate
		if err = rows.Scan(&d.ID, &d.Date, &d.IsActive); err != nil {
			log.Err(err).Str("func", "*breadRepository.ListOrderDatesAfter").Msg("error scanning order date")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		dates = append(dates, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return dates, nil
}

func (r *breadRepository) FindOrderDate(ctx context.Context, dateID int64) (models.OrderDate, error) {
	return r.findOrderDate(ctx, "*breadRepository.FindOrderDate", findOrderDate, dateID)
}

func (r *breadRepository) FindOrderDateByDate(ctx context.Context, date models.Date) (models.OrderDate, error) {
	return r.findOrderDate(ctx, "*breadRepository.FindOrderDateByDate", findOrderDateByDate, date)
}

func (r *breadRepository) FindNextOrderDate(ctx context.Context, from models.Date) (models.OrderDate, error) {
	return r.findOrderDate(ctx, "*breadRepository.FindNextOrderDate", findNextOrderDate, from)
}

func (r *breadRepository) findOrderDate(ctx context.Context, funcName, query string, arg any) (models.OrderDate, error) {
	log := logger.FromContext(ctx)

	var d models.OrderDate
	err := r.db.QueryRowContext(ctx, r.db.rebind(query), arg).Scan(&d.ID, &d.Date, &d.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OrderDate{}, ErrOrderDateNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting order date")
		return models.OrderDate{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return d, nil
}

// CreateOrderDate adds a delivery day. A second date on the same day yields
// [ErrOrderDateAlreadyExists].
func (r *breadRepository) CreateOrderDate(ctx context.Context, date models.Date, active bool) (models.OrderDate, error) {
	log := logger.FromContext(ctx)

	d := models.OrderDate{Date: date, IsActive: active}
	if err := r.db.QueryRowContext(ctx, r.db.rebind(createOrderDate), date, active).Scan(&d.ID); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.OrderDate{}, ErrOrderDateAlreadyExists
		}
		log.Err(err).Str("func", "*breadRepository.CreateOrderDate").Msg("error inserting order date")
		return models.OrderDate{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return d, nil
}

func (r *breadRepository) SetOrderDateActive(ctx context.Context, date models.Date, active bool) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, r.db.rebind(setOrderDateActive), active, date)
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.SetOrderDateActive").Msg("error updating order date")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrderDateNotFound
	}

	return nil
}

func (r *breadRepository) ListBreadTypes(ctx context.Context) ([]models.BreadType, error) {
	return r.queryBreadTypes(ctx, "*breadRepository.ListBreadTypes", listBreadTypes)
}

func (r *breadRepository) FindBreadTypesByName(ctx context.Context, names []string) ([]models.BreadType, error) {
	if len(names) == 0 {
		return []models.BreadType{}, nil
	}

	query, args, err := buildFindByNamesQuery(r.db.builder, "bread_types", []string{"id", "name", "price"}, names)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*breadRepository.FindBreadTypesByName").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBreadTypes(ctx, "*breadRepository.FindBreadTypesByName", query, args...)
}

func (r *breadRepository) queryBreadTypes(ctx context.Context, funcName, query string, args ...any) ([]models.BreadType, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting bread types")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	types := make([]models.BreadType, 0)
	for rows.Next() {
		var t models.BreadType
		if err = rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		types = append(types, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return types, nil
}

func (r *breadRepository) CreateBreadType(ctx context.Context, name string, price int64) (models.BreadType, error) {
	log := logger.FromContext(ctx)

	t := models.BreadType{Name: name, Price: price}
	if err := r.db.QueryRowContext(ctx, r.db.rebind(createBreadType), name, price).Scan(&t.ID); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.BreadType{}, ErrBreadTypeAlreadyExists
		}
		log.Err(err).Str("func", "*breadRepository.CreateBreadType").Msg("error inserting bread type")
		return models.BreadType{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return t, nil
}

func (r *breadRepository) ListUserOrdersAfter(ctx context.Context, userID int64, after models.Date) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.db.rebind(listUserOrdersAfter), userID, after)
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.ListUserOrdersAfter").Msg("error selecting orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err = rows.Scan(&o.ID, &o.UserID, &o.DateID, &o.Type.ID, &o.Type.Name, &o.Type.Price); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

// AddOrders writes every (date, type) combination or nothing at all.
func (r *breadRepository) AddOrders(ctx context.Context, userID int64, dateIDs []int64, typeIDs []int64) error {
	log := logger.FromContext(ctx)

	if len(dateIDs) == 0 || len(typeIDs) == 0 {
		return nil
	}

	query := r.db.rebind(insertOrder)
	err := r.db.withTx(ctx, "*breadRepository.AddOrders", func(tx *sql.Tx) error {
		for _, dateID := range dateIDs {
			for _, typeID := range typeIDs {
				if _, err := tx.ExecContext(ctx, query, userID, dateID, typeID); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.AddOrders").Int64("user_id", userID).Msg("error adding orders")
		return err
	}

	log.Info().
		Str("func", "*breadRepository.AddOrders").
		Int64("user_id", userID).
		Int("dates", len(dateIDs)).
		Int("items", len(typeIDs)).
		Msg("orders added")

	return nil
}

// DeleteUserOrders removes the user's orders on dateIDs and returns how many
// were removed.
func (r *breadRepository) DeleteUserOrders(ctx context.Context, userID int64, dateIDs []int64) (int64, error) {
	log := logger.FromContext(ctx)

	if len(dateIDs) == 0 {
		return 0, nil
	}

	query, args, err := buildDeleteUserOrdersQuery(r.db.builder, userID, dateIDs)
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.DeleteUserOrders").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.db.withTx(ctx, "*breadRepository.DeleteUserOrders", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deleted, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.DeleteUserOrders").Int64("user_id", userID).Msg("error deleting orders")
		return 0, err
	}

	return deleted, nil
}

// ReportRows lists the amount per (user, bread type) on the order date,
// sorted by corridor and room.
func (r *breadRepository) ReportRows(ctx context.Context, dateID int64) ([]models.BreadReportRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.db.rebind(breadReportRows), dateID)
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.ReportRows").Msg("error selecting report rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	report := make([]models.BreadReportRow, 0)
	for rows.Next() {
		var (
			row  models.BreadReportRow
			room sql.NullInt64
		)
		if err = rows.Scan(&row.FirstName, &row.LastName, &row.Corridor, &room, &row.BreadType, &row.Amount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if room.Valid {
			n := int(room.Int64)
			row.Room = &n
		}
		report = append(report, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return report, nil
}

// ReportTotals counts the ordered items per bread type, sorted by type id.
func (r *breadRepository) ReportTotals(ctx context.Context, dateID int64) ([]models.BreadTotalRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.db.rebind(breadReportTotals), dateID)
	if err != nil {
		log.Err(err).Str("func", "*breadRepository.ReportTotals").Msg("error selecting report totals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	totals := make([]models.BreadTotalRow, 0)
	for rows.Next() {
		var t models.BreadTotalRow
		if err = rows.Scan(&t.TypeID, &t.Name, &t.Amount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		totals = append(totals, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return totals, nil
}
