// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	wit   = models.BreadType{ID: 1, Name: "wit", Price: 180}
	bruin = models.BreadType{ID: 2, Name: "bruin", Price: 200}
)

// scheduleDates relative to testNow (15 October): tomorrow, the edge of the
// lock window, the first editable day, an inactive date and a normal one.
var scheduleDates = []models.OrderDate{
	{ID: 1, Date: day(time.October, 16), IsActive: true},
	{ID: 2, Date: day(time.October, 17), IsActive: true},
	{ID: 3, Date: day(time.October, 18), IsActive: true},
	{ID: 4, Date: day(time.October, 24), IsActive: false},
	{ID: 5, Date: day(time.October, 25), IsActive: true},
}

func newBreadService(repos repositories) BreadService {
	return NewBreadService(repos.bread, fixedClock(testNow), logger.Nop())
}

func TestBreadService_ListOrderDates(t *testing.T) {
	repos := newRepositories(t)
	ctx := context.Background()
	after := day(time.August, 31)

	repos.bread.EXPECT().ListOrderDatesAfter(gomock.Any(), after).Return(scheduleDates, nil)
	repos.bread.EXPECT().ListUserOrdersAfter(gomock.Any(), int64(7), after).Return([]models.Order{
		{ID: 10, UserID: 7, DateID: 3, Type: wit},
		{ID: 11, UserID: 7, DateID: 3, Type: bruin},
		{ID: 12, UserID: 7, DateID: 5, Type: wit},
		{ID: 13, UserID: 7, DateID: 99, Type: wit},
	}, nil)

	dates, err := newBreadService(repos).ListOrderDates(ctx, 7)
	require.NoError(t, err)
	require.Len(t, dates, 5)

	editable := make([]bool, 0, len(dates))
	for _, d := range dates {
		editable = append(editable, d.IsEditable)
	}
	assert.Equal(t, []bool{false, false, true, false, true}, editable)

	assert.Empty(t, dates[0].Orders)
	assert.NotNil(t, dates[0].Orders)
	assert.Zero(t, dates[0].TotalPrice)

	assert.Equal(t, []models.OrderLine{{ID: 10, Type: "wit"}, {ID: 11, Type: "bruin"}}, dates[2].Orders)
	assert.Equal(t, int64(380), dates[2].TotalPrice)
	assert.Equal(t, int64(180), dates[4].TotalPrice)
}

func TestBreadService_EditabilityFollowsClock(t *testing.T) {
	date := models.OrderDate{ID: 3, Date: day(time.October, 18), IsActive: true}

	tests := []struct {
		now  time.Time
		want bool
	}{
		{now: time.Date(2025, time.October, 14, 23, 59, 0, 0, time.UTC), want: true},
		{now: time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), want: true},
		{now: time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC), want: false},
		{now: time.Date(2025, time.October, 18, 12, 0, 0, 0, time.UTC), want: false},
		{now: time.Date(2025, time.October, 20, 12, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.now.Format(time.DateTime), func(t *testing.T) {
			repos := newRepositories(t)
			repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(3)).Return(date, nil)
			if tt.want {
				repos.bread.EXPECT().DeleteUserOrders(gomock.Any(), int64(7), []int64{3}).Return(int64(0), nil)
			}

			s := NewBreadService(repos.bread, fixedClock(tt.now), logger.Nop())
			err := s.DeleteOrdersOn(context.Background(), 7, 3)
			if tt.want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotEditable)
			}
		})
	}
}

func TestBreadService_AddOrders(t *testing.T) {
	t.Run("keeps repetitions", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(3)).Return(scheduleDates[2], nil)
		repos.bread.EXPECT().FindBreadTypesByName(gomock.Any(), []string{"wit", "wit", "bruin"}).Return([]models.BreadType{wit, bruin}, nil)
		repos.bread.EXPECT().AddOrders(gomock.Any(), int64(7), []int64{3}, []int64{1, 1, 2}).Return(nil)

		err := newBreadService(repos).AddOrders(context.Background(), 7, 3, []string{"wit", "wit", "bruin"})
		require.NoError(t, err)
	})

	t.Run("not editable", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(2)).Return(scheduleDates[1], nil)

		err := newBreadService(repos).AddOrders(context.Background(), 7, 2, []string{"wit"})
		assert.ErrorIs(t, err, ErrNotEditable)
	})

	t.Run("inactive", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(4)).Return(scheduleDates[3], nil)

		err := newBreadService(repos).AddOrders(context.Background(), 7, 4, []string{"wit"})
		assert.ErrorIs(t, err, ErrNotEditable)
	})

	t.Run("unknown bread type writes nothing", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(3)).Return(scheduleDates[2], nil)
		repos.bread.EXPECT().FindBreadTypesByName(gomock.Any(), []string{"wit", "spelt"}).Return([]models.BreadType{wit}, nil)

		err := newBreadService(repos).AddOrders(context.Background(), 7, 3, []string{"wit", "spelt"})

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "items", fieldErr.Field)
		assert.ErrorIs(t, err, ErrUnknownItem)
	})

	t.Run("unknown date", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(42)).Return(models.OrderDate{}, store.ErrOrderDateNotFound)

		err := newBreadService(repos).AddOrders(context.Background(), 7, 42, []string{"wit"})
		assert.ErrorIs(t, err, store.ErrOrderDateNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(3)).Return(scheduleDates[2], nil)
		repos.bread.EXPECT().FindBreadTypesByName(gomock.Any(), gomock.Any()).Return([]models.BreadType{wit}, nil)
		repos.bread.EXPECT().AddOrders(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrCommitingTransaction)

		err := newBreadService(repos).AddOrders(context.Background(), 7, 3, []string{"wit"})
		assert.ErrorIs(t, err, store.ErrCommitingTransaction)
	})
}

func TestBreadService_AddOrdersAfter_SkipsNonEditableDates(t *testing.T) {
	repos := newRepositories(t)
	today := day(time.October, 15)

	repos.bread.EXPECT().FindBreadTypesByName(gomock.Any(), []string{"bruin"}).Return([]models.BreadType{bruin}, nil)
	repos.bread.EXPECT().ListOrderDatesAfter(gomock.Any(), today).Return(scheduleDates, nil)
	repos.bread.EXPECT().AddOrders(gomock.Any(), int64(7), []int64{3, 5}, []int64{2}).Return(nil)

	require.NoError(t, newBreadService(repos).AddOrdersAfter(context.Background(), 7, today, []string{"bruin"}))
}

func TestBreadService_AddOrdersAfter_UnknownItemWritesNothing(t *testing.T) {
	repos := newRepositories(t)

	repos.bread.EXPECT().FindBreadTypesByName(gomock.Any(), []string{"spelt"}).Return(nil, nil)

	err := newBreadService(repos).AddOrdersAfter(context.Background(), 7, day(time.October, 15), []string{"spelt"})
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestBreadService_DeleteOrdersOn_Idempotent(t *testing.T) {
	repos := newRepositories(t)
	repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(3)).Return(scheduleDates[2], nil).Times(2)
	gomock.InOrder(
		repos.bread.EXPECT().DeleteUserOrders(gomock.Any(), int64(7), []int64{3}).Return(int64(2), nil),
		repos.bread.EXPECT().DeleteUserOrders(gomock.Any(), int64(7), []int64{3}).Return(int64(0), nil),
	)

	s := newBreadService(repos)
	require.NoError(t, s.DeleteOrdersOn(context.Background(), 7, 3))
	require.NoError(t, s.DeleteOrdersOn(context.Background(), 7, 3))
}

func TestBreadService_DeleteOrdersAfter_OnlyEditable(t *testing.T) {
	repos := newRepositories(t)
	today := day(time.October, 15)

	repos.bread.EXPECT().ListOrderDatesAfter(gomock.Any(), today).Return(scheduleDates, nil)
	repos.bread.EXPECT().DeleteUserOrders(gomock.Any(), int64(7), []int64{3, 5}).Return(int64(4), nil)

	require.NoError(t, newBreadService(repos).DeleteOrdersAfter(context.Background(), 7, today))
}

func TestBreadService_Reports(t *testing.T) {
	rows := []models.BreadReportRow{{FirstName: "Jan", Corridor: "1A", BreadType: "wit", Amount: 2}}
	totals := []models.BreadTotalRow{{TypeID: 1, Name: "wit", Amount: 2}}

	t.Run("weekly report", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDate(gomock.Any(), int64(3)).Return(scheduleDates[2], nil)
		repos.bread.EXPECT().ReportRows(gomock.Any(), int64(3)).Return(rows, nil)
		repos.bread.EXPECT().ReportTotals(gomock.Any(), int64(3)).Return(totals, nil)

		report, err := newBreadService(repos).WeeklyReport(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, models.BreadReport{OrderDate: scheduleDates[2], Rows: rows, Totals: totals}, report)
	})

	t.Run("next order date when no date given", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindNextOrderDate(gomock.Any(), day(time.October, 15)).Return(scheduleDates[0], nil)
		repos.bread.EXPECT().ReportRows(gomock.Any(), int64(1)).Return(nil, nil)
		repos.bread.EXPECT().ReportTotals(gomock.Any(), int64(1)).Return(nil, nil)

		report, err := newBreadService(repos).ReportForDate(context.Background(), models.Date{})
		require.NoError(t, err)
		assert.Equal(t, scheduleDates[0], report.OrderDate)
	})

	t.Run("given date", func(t *testing.T) {
		repos := newRepositories(t)
		repos.bread.EXPECT().FindOrderDateByDate(gomock.Any(), day(time.October, 25)).Return(scheduleDates[4], nil)
		repos.bread.EXPECT().ReportRows(gomock.Any(), int64(5)).Return(rows, nil)
		repos.bread.EXPECT().ReportTotals(gomock.Any(), int64(5)).Return(nil, errors.New("boom"))

		_, err := newBreadService(repos).ReportForDate(context.Background(), day(time.October, 25))
		assert.Error(t, err)
	})
}
