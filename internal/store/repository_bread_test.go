// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type breadFixture struct {
	repo   BreadRepository
	users  UserRepository
	dates  []models.OrderDate
	types  []models.BreadType
	userID int64
}

func newBreadFixture(t *testing.T) breadFixture {
	t.Helper()

	s := newSQLiteStorages(t)
	ctx := context.Background()

	f := breadFixture{repo: s.BreadRepository, users: s.UserRepository}
	f.userID = mustCreateUser(t, s.UserRepository, "bread@example.com", "Bart", "Brood").ID

	for _, d := range []models.Date{
		models.NewDate(2026, time.October, 20),
		models.NewDate(2026, time.October, 13),
		models.NewDate(2026, time.October, 27),
	} {
		od, err := f.repo.CreateOrderDate(ctx, d, true)
		require.NoError(t, err)
		f.dates = append(f.dates, od)
	}

	for _, bt := range []struct {
		name  string
		price int64
	}{{"wit", 180}, {"bruin", 200}, {"croissant", 110}} {
		created, err := f.repo.CreateBreadType(ctx, bt.name, bt.price)
		require.NoError(t, err)
		f.types = append(f.types, created)
	}

	return f
}

func TestBreadRepository_OrderDates(t *testing.T) {
	f := newBreadFixture(t)
	ctx := context.Background()

	dates, err := f.repo.ListOrderDatesAfter(ctx, models.NewDate(2026, time.October, 13))
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "2026-10-20", dates[0].Date.String())
	assert.Equal(t, "2026-10-27", dates[1].Date.String())
	assert.True(t, dates[0].IsActive)

	byID, err := f.repo.FindOrderDate(ctx, f.dates[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-13", byID.Date.String())

	byDate, err := f.repo.FindOrderDateByDate(ctx, models.NewDate(2026, time.October, 27))
	require.NoError(t, err)
	assert.Equal(t, f.dates[2].ID, byDate.ID)

	next, err := f.repo.FindNextOrderDate(ctx, models.NewDate(2026, time.October, 14))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", next.Date.String())

	_, err = f.repo.FindNextOrderDate(ctx, models.NewDate(2026, time.November, 1))
	assert.ErrorIs(t, err, ErrOrderDateNotFound)

	_, err = f.repo.FindOrderDate(ctx, 999)
	assert.ErrorIs(t, err, ErrOrderDateNotFound)

	_, err = f.repo.CreateOrderDate(ctx, models.NewDate(2026, time.October, 20), true)
	assert.ErrorIs(t, err, ErrOrderDateAlreadyExists)
}

func TestBreadRepository_SetOrderDateActive(t *testing.T) {
	f := newBreadFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.SetOrderDateActive(ctx, f.dates[0].Date, false))

	d, err := f.repo.FindOrderDate(ctx, f.dates[0].ID)
	require.NoError(t, err)
	assert.False(t, d.IsActive)

	err = f.repo.SetOrderDateActive(ctx, models.NewDate(2030, time.January, 1), false)
	assert.ErrorIs(t, err, ErrOrderDateNotFound)
}

func TestBreadRepository_BreadTypes(t *testing.T) {
	f := newBreadFixture(t)
	ctx := context.Background()

	all, err := f.repo.ListBreadTypes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "wit", all[0].Name)
	assert.Equal(t, int64(180), all[0].Price)

	found, err := f.repo.FindBreadTypesByName(ctx, []string{"croissant", "wit", "wit", "spelt"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "wit", found[0].Name)
	assert.Equal(t, "croissant", found[1].Name)

	none, err := f.repo.FindBreadTypesByName(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.repo.CreateBreadType(ctx, "wit", 1)
	assert.ErrorIs(t, err, ErrBreadTypeAlreadyExists)
}

func TestBreadRepository_AddAndListOrders(t *testing.T) {
	f := newBreadFixture(t)
	ctx := context.Background()

	wit, croissant := f.types[0], f.types[2]
	err := f.repo.AddOrders(ctx, f.userID, []int64{f.dates[0].ID, f.dates[2].ID}, []int64{wit.ID, croissant.ID, croissant.ID})
	require.NoError(t, err)

	orders, err := f.repo.ListUserOrdersAfter(ctx, f.userID, models.NewDate(2026, time.October, 1))
	require.NoError(t, err)
	require.Len(t, orders, 6)
	assert.Equal(t, f.dates[0].ID, orders[0].DateID)
	assert.Equal(t, "wit", orders[0].Type.Name)
	assert.Equal(t, int64(110), orders[1].Type.Price)
	assert.Equal(t, f.dates[2].ID, orders[5].DateID)

	later, err := f.repo.ListUserOrdersAfter(ctx, f.userID, models.NewDate(2026, time.October, 20))
	require.NoError(t, err)
	assert.Len(t, later, 3)
}

func TestBreadRepository_AddOrdersIsAllOrNothing(t *testing.T) {
	f := newBreadFixture(t)
	ctx := context.Background()

	// the unknown type id violates the foreign key after the first insert
	err := f.repo.AddOrders(ctx, f.userID, []int64{f.dates[0].ID}, []int64{f.types[0].ID, 999})
	require.Error(t, err)

	orders, err := f.repo.ListUserOrdersAfter(ctx, f.userID, models.NewDate(2026, time.January, 1))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestBreadRepository_DeleteUserOrders(t *testing.T) {
	f := newBreadFixture(t)
	ctx := context.Background()

	other := mustCreateUser(t, f.users, "other@example.com", "O", "T")
	require.NoError(t, f.repo.AddOrders(ctx, f.userID, []int64{f.dates[0].ID, f.dates[2].ID}, []int64{f.types[1].ID}))
	require.NoError(t, f.repo.AddOrders(ctx, other.ID, []int64{f.dates[0].ID}, []int64{f.types[1].ID}))

	deleted, err := f.repo.DeleteUserOrders(ctx, f.userID, []int64{f.dates[0].ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = f.repo.DeleteUserOrders(ctx, f.userID, []int64{f.dates[0].ID})
	require.NoError(t, err)
	assert.Zero(t, deleted)

	mine, err := f.repo.ListUserOrdersAfter(ctx, f.userID, models.NewDate(2026, time.January, 1))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.dates[2].ID, mine[0].DateID)

	theirs, err := f.repo.ListUserOrdersAfter(ctx, other.ID, models.NewDate(2026, time.January, 1))
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	deleted, err = f.repo.DeleteUserOrders(ctx, f.userID, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestBreadRepository_Report(t *testing.T) {
	f := newBreadFixture(t)
	ctx := context.Background()

	mkUser := func(email, first, last, corridor string, room int) int64 {
		u, err := f.users.CreateUser(ctx, models.User{
			Email: email, FirstName: first, LastName: last, Corridor: corridor, Room: ptr(room), PasswordHash: "x",
		})
		require.NoError(t, err)
		return u.ID
	}
	a := mkUser("a@example.com", "Ann", "Aerts", "2", 5)
	b := mkUser("b@example.com", "Bob", "Baert", "1", 9)
	c := mkUser("c@example.com", "Cas", "Claes", "1", 3)

	date := f.dates[0].ID
	wit, bruin := f.types[0].ID, f.types[1].ID
	require.NoError(t, f.repo.AddOrders(ctx, a, []int64{date}, []int64{bruin, wit}))
	require.NoError(t, f.repo.AddOrders(ctx, b, []int64{date}, []int64{wit, wit}))
	require.NoError(t, f.repo.AddOrders(ctx, c, []int64{date}, []int64{bruin}))
	require.NoError(t, f.repo.AddOrders(ctx, c, []int64{f.dates[2].ID}, []int64{wit}))

	rows, err := f.repo.ReportRows(ctx, date)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Cas", rows[0].FirstName)
	assert.Equal(t, "bruin", rows[0].BreadType)
	assert.Equal(t, 1, rows[0].Amount)

	assert.Equal(t, "Bob", rows[1].FirstName)
	assert.Equal(t, "wit", rows[1].BreadType)
	assert.Equal(t, 2, rows[1].Amount)
	require.NotNil(t, rows[1].Room)
	assert.Equal(t, 9, *rows[1].Room)

	assert.Equal(t, "Ann", rows[2].FirstName)
	assert.Equal(t, "wit", rows[2].BreadType)
	assert.Equal(t, "Ann", rows[3].FirstName)
	assert.Equal(t, "bruin", rows[3].BreadType)

	totals, err := f.repo.ReportTotals(ctx, date)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, models.BreadTotalRow{TypeID: wit, Name: "wit", Amount: 3}, totals[0])
	assert.Equal(t, models.BreadTotalRow{TypeID: bruin, Name: "bruin", Amount: 2}, totals[1])
}

func TestBreadRepository_AddOrders_CommitError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBreadRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bread_orders").
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.AddOrders(context.Background(), 1, []int64{2}, []int64{3})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreadRepository_AddOrders_RollsBackOnInsertError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBreadRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bread_orders").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO bread_orders").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.AddOrders(context.Background(), 1, []int64{2}, []int64{3, 4})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreadRepository_AddOrders_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBreadRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bread_orders").WillReturnError(pgError("40001"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bread_orders").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AddOrders(context.Background(), 1, []int64{2}, []int64{3})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreadRepository_DeleteUserOrders_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBreadRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.DeleteUserOrders(context.Background(), 1, []int64{2, 3})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreadRepository_DeleteUserOrders_Query(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBreadRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM bread_orders WHERE user_id = \$1 AND date_id IN \(\$2,\$3\)`).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	deleted, err := repo.DeleteUserOrders(context.Background(), 1, []int64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
