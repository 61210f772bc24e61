// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lerkeveld/underground/models"
)

// Static queries use "?" placeholders and go through [DB.rebind].
const (
	userColumns = `id, first_name, last_name, email, phone, corridor, room,
		is_admin, is_activated, is_sharing, is_member, password_hash, created_at`

	createUser = `INSERT INTO users (first_name, last_name, email, phone, corridor, room,
		is_admin, is_activated, is_sharing, is_member, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	findUserByID    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	listUsers       = `SELECT ` + userColumns + ` FROM users ORDER BY first_name, last_name, id`
	emailExists     = `SELECT COUNT(*) FROM users WHERE email = ?`

	updatePasswordAndSharing = `UPDATE users SET password_hash = ?, is_sharing = ? WHERE id = ?`
	setActivated             = `UPDATE users SET is_activated = ? WHERE id = ?`

	createGroup     = `INSERT INTO hall_groups (name) VALUES (?) RETURNING id`
	findGroupByName = `SELECT id FROM hall_groups WHERE name = ?`
	addUserToGroup  = `INSERT INTO user_groups (user_id, group_id) VALUES (?, ?)`

	listUserGroups = `SELECT g.name FROM hall_groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = ?
		ORDER BY g.name`

	orderDateColumns    = `id, date, is_active`
	listOrderDatesAfter = `SELECT ` + orderDateColumns + ` FROM bread_order_dates WHERE date > ? ORDER BY date`
	findOrderDate       = `SELECT ` + orderDateColumns + ` FROM bread_order_dates WHERE id = ?`
	findOrderDateByDate = `SELECT ` + orderDateColumns + ` FROM bread_order_dates WHERE date = ?`
	findNextOrderDate   = `SELECT ` + orderDateColumns + ` FROM bread_order_dates WHERE date >= ? ORDER BY date LIMIT 1`
	createOrderDate     = `INSERT INTO bread_order_dates (date, is_active) VALUES (?, ?) RETURNING id`
	setOrderDateActive  = `UPDATE bread_order_dates SET is_active = ? WHERE date = ?`

	listBreadTypes  = `SELECT id, name, price FROM bread_types ORDER BY id`
	createBreadType = `INSERT INTO bread_types (name, price) VALUES (?, ?) RETURNING id`
	insertOrder     = `INSERT INTO bread_orders (user_id, date_id, type_id) VALUES (?, ?, ?)`

	listUserOrdersAfter = `SELECT o.id, o.user_id, o.date_id, t.id, t.name, t.price
		FROM bread_orders o
		JOIN bread_order_dates d ON d.id = o.date_id
		JOIN bread_types t ON t.id = o.type_id
		WHERE o.user_id = ? AND d.date > ?
		ORDER BY d.date, o.id`

	breadReportRows = `SELECT u.first_name, u.last_name, u.corridor, u.room, t.name, COUNT(o.id)
		FROM bread_orders o
		JOIN users u ON u.id = o.user_id
		JOIN bread_types t ON t.id = o.type_id
		WHERE o.date_id = ?
		GROUP BY u.id, u.first_name, u.last_name, u.corridor, u.room, t.id, t.name
		ORDER BY u.corridor, u.room, u.last_name, u.first_name, t.id`

	breadReportTotals = `SELECT t.id, t.name, COUNT(o.id)
		FROM bread_orders o
		JOIN bread_types t ON t.id = o.type_id
		WHERE o.date_id = ?
		GROUP BY t.id, t.name
		ORDER BY t.id`

	kotbarColumns = `k.id, k.user_id, u.first_name, u.last_name, u.email, k.date, k.description, k.created_at`

	createKotbarReservation = `INSERT INTO kotbar_reservations (user_id, date, description, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	kotbarIsBooked          = `SELECT COUNT(*) FROM kotbar_reservations WHERE date = ?`
	deleteKotbarReservation = `DELETE FROM kotbar_reservations WHERE id = ?`

	listKotbarReservationsAfter = `SELECT ` + kotbarColumns + `
		FROM kotbar_reservations k
		JOIN users u ON u.id = k.user_id
		WHERE k.date > ?
		ORDER BY k.date DESC`

	findKotbarReservation = `SELECT ` + kotbarColumns + `
		FROM kotbar_reservations k
		JOIN users u ON u.id = k.user_id
		WHERE k.id = ?`

	listMaterialTypes  = `SELECT id, name FROM material_types ORDER BY id`
	createMaterialType = `INSERT INTO material_types (name) VALUES (?) RETURNING id`

	bookedMaterialItemsOn = `SELECT t.id, t.name
		FROM material_reservation_items i
		JOIN material_types t ON t.id = i.material_type_id
		WHERE i.date = ?
		ORDER BY t.id`

	createMaterialReservation = `INSERT INTO material_reservations (user_id, date, created_at)
		VALUES (?, ?, ?)
		RETURNING id`

	insertMaterialReservationItem = `INSERT INTO material_reservation_items (reservation_id, material_type_id, date)
		VALUES (?, ?, ?)`

	deleteMaterialReservationItems = `DELETE FROM material_reservation_items WHERE reservation_id = ?`
	deleteMaterialReservation      = `DELETE FROM material_reservations WHERE id = ?`
)

// materialReservationColumns is one row per reserved item; reservations
// without items yield a single row with NULL item columns.
var materialReservationColumns = []string{
	"r.id", "r.user_id", "u.first_name", "u.last_name", "u.email", "r.date", "r.created_at",
	"t.id", "t.name",
}

// buildMaterialReservationsQuery selects material reservations with their
// items, newest date first, filtered by where.
func buildMaterialReservationsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(materialReservationColumns...).
		From("material_reservations r").
		Join("users u ON u.id = r.user_id").
		LeftJoin("material_reservation_items i ON i.reservation_id = r.id").
		LeftJoin("material_types t ON t.id = i.material_type_id").
		Where(where).
		OrderBy("r.date DESC", "r.id", "t.id").
		ToSql()
}

// buildUpdateProfileQuery builds an UPDATE touching only the non-nil fields
// of update. ok is false when there is nothing to update.
func buildUpdateProfileQuery(b sq.StatementBuilderType, userID int64, update models.ProfileUpdate) (query string, args []any, ok bool, err error) {
	if update.IsEmpty() {
		return "", nil, false, nil
	}

	qb := b.Update("users").Where(sq.Eq{"id": userID})
	if update.Phone != nil {
		qb = qb.Set("phone", *update.Phone)
	}
	if update.Corridor != nil {
		qb = qb.Set("corridor", *update.Corridor)
	}
	if update.Room != nil {
		qb = qb.Set("room", *update.Room)
	}
	if update.IsSharing != nil {
		qb = qb.Set("is_sharing", *update.IsSharing)
	}

	query, args, err = qb.ToSql()
	return query, args, err == nil, err
}

// buildUpdateCredentialsQuery builds an UPDATE of email and/or password hash,
// skipping empty values. ok is false when both are empty.
func buildUpdateCredentialsQuery(b sq.StatementBuilderType, userID int64, email, passwordHash string) (query string, args []any, ok bool, err error) {
	if email == "" && passwordHash == "" {
		return "", nil, false, nil
	}

	qb := b.Update("users").Where(sq.Eq{"id": userID})
	if email != "" {
		qb = qb.Set("email", email)
	}
	if passwordHash != "" {
		qb = qb.Set("password_hash", passwordHash)
	}

	query, args, err = qb.ToSql()
	return query, args, err == nil, err
}

// buildFindByNamesQuery selects id and the given columns of table for rows
// whose name is in names.
func buildFindByNamesQuery(b sq.StatementBuilderType, table string, columns []string, names []string) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		Where(sq.Eq{"name": names}).
		OrderBy("id").
		ToSql()
}

// buildDeleteUserOrdersQuery deletes the user's orders on dateIDs.
func buildDeleteUserOrdersQuery(b sq.StatementBuilderType, userID int64, dateIDs []int64) (string, []any, error) {
	return b.Delete("bread_orders").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"date_id": dateIDs}).
		ToSql()
}
