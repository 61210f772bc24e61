// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/models"
)

type breadService struct {
	breadRepository store.BreadRepository
	clock           Clock

	logger *logger.Logger
}

func NewBreadService(breadRepository store.BreadRepository, clock Clock, logger *logger.Logger) BreadService {
	return &breadService{
		breadRepository: breadRepository,
		clock:           clock,
		logger:          logger,
	}
}

func (s *breadService) Today() models.Date {
	return s.clock.Today()
}

// ListOrderDates implements BreadService. Editability is evaluated against
// today on every call.
func (s *breadService) ListOrderDates(ctx context.Context, userID int64) ([]models.OrderDateWithOrders, error) {
	after := s.clock.TermStart().AddDays(-1)
	today := s.clock.Today()

	dates, err := s.breadRepository.ListOrderDatesAfter(ctx, after)
	if err != nil {
		return nil, err
	}
	orders, err := s.breadRepository.ListUserOrdersAfter(ctx, userID, after)
	if err != nil {
		return nil, err
	}

	result := make([]models.OrderDateWithOrders, 0, len(dates))
	index := make(map[int64]int, len(dates))
	for i, d := range dates {
		index[d.ID] = i
		result = append(result, models.OrderDateWithOrders{
			ID:         d.ID,
			Date:       d.Date,
			IsActive:   d.IsActive,
			IsEditable: d.Editable(today),
			Orders:     []models.OrderLine{},
		})
	}

	for _, o := range orders {
		i, ok := index[o.DateID]
		if !ok {
			continue
		}
		result[i].Orders = append(result[i].Orders, models.OrderLine{ID: o.ID, Type: o.Type.Name})
		result[i].TotalPrice += o.Type.Price
	}

	return result, nil
}

// AddOrders implements BreadService.
func (s *breadService) AddOrders(ctx context.Context, userID, dateID int64, items []string) error {
	date, err := s.breadRepository.FindOrderDate(ctx, dateID)
	if err != nil {
		return err
	}
	if !date.Editable(s.clock.Today()) {
		return ErrNotEditable
	}

	typeIDs, err := s.resolveBreadTypes(ctx, items)
	if err != nil {
		return err
	}

	if err = s.breadRepository.AddOrders(ctx, userID, []int64{date.ID}, typeIDs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*breadService.AddOrders").Int64("date_id", dateID).Msg("adding orders failed")
		return fmt.Errorf("adding orders failed: %w", err)
	}
	return nil
}

// AddOrdersAfter implements BreadService. Items are resolved before any
// date is looked at, so an unknown item writes nothing.
func (s *breadService) AddOrdersAfter(ctx context.Context, userID int64, after models.Date, items []string) error {
	typeIDs, err := s.resolveBreadTypes(ctx, items)
	if err != nil {
		return err
	}

	dateIDs, err := s.editableDatesAfter(ctx, after)
	if err != nil {
		return err
	}

	if err = s.breadRepository.AddOrders(ctx, userID, dateIDs, typeIDs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*breadService.AddOrdersAfter").Msg("adding orders failed")
		return fmt.Errorf("adding orders failed: %w", err)
	}
	return nil
}

// DeleteOrdersOn implements BreadService. Deleting from a date without
// orders succeeds.
func (s *breadService) DeleteOrdersOn(ctx context.Context, userID, dateID int64) error {
	date, err := s.breadRepository.FindOrderDate(ctx, dateID)
	if err != nil {
		return err
	}
	if !date.Editable(s.clock.Today()) {
		return ErrNotEditable
	}

	if _, err = s.breadRepository.DeleteUserOrders(ctx, userID, []int64{date.ID}); err != nil {
		return fmt.Errorf("deleting orders failed: %w", err)
	}
	return nil
}

// DeleteOrdersAfter implements BreadService. Orders on dates that are no
// longer editable stay.
func (s *breadService) DeleteOrdersAfter(ctx context.Context, userID int64, after models.Date) error {
	dateIDs, err := s.editableDatesAfter(ctx, after)
	if err != nil {
		return err
	}

	if _, err = s.breadRepository.DeleteUserOrders(ctx, userID, dateIDs); err != nil {
		return fmt.Errorf("deleting orders failed: %w", err)
	}
	return nil
}

func (s *breadService) BreadTypes(ctx context.Context) ([]models.BreadType, error) {
	return s.breadRepository.ListBreadTypes(ctx)
}

// WeeklyReport implements BreadService.
func (s *breadService) WeeklyReport(ctx context.Context, dateID int64) (models.BreadReport, error) {
	date, err := s.breadRepository.FindOrderDate(ctx, dateID)
	if err != nil {
		return models.BreadReport{}, err
	}
	return s.report(ctx, date)
}

// ReportForDate implements BreadService.
func (s *breadService) ReportForDate(ctx context.Context, date models.Date) (models.BreadReport, error) {
	var (
		orderDate models.OrderDate
		err       error
	)
	if date.IsZero() {
		orderDate, err = s.breadRepository.FindNextOrderDate(ctx, s.clock.Today())
	} else {
		orderDate, err = s.breadRepository.FindOrderDateByDate(ctx, date)
	}
	if err != nil {
		return models.BreadReport{}, err
	}

	return s.report(ctx, orderDate)
}

func (s *breadService) CreateOrderDate(ctx context.Context, date models.Date, active bool) (models.OrderDate, error) {
	return s.breadRepository.CreateOrderDate(ctx, date, active)
}

func (s *breadService) SetOrderDateActive(ctx context.Context, date models.Date, active bool) error {
	return s.breadRepository.SetOrderDateActive(ctx, date, active)
}

func (s *breadService) CreateBreadType(ctx context.Context, name string, price int64) (models.BreadType, error) {
	return s.breadRepository.CreateBreadType(ctx, name, price)
}

func (s *breadService) report(ctx context.Context, date models.OrderDate) (models.BreadReport, error) {
	rows, err := s.breadRepository.ReportRows(ctx, date.ID)
	if err != nil {
		return models.BreadReport{}, err
	}
	totals, err := s.breadRepository.ReportTotals(ctx, date.ID)
	if err != nil {
		return models.BreadReport{}, err
	}

	return models.BreadReport{OrderDate: date, Rows: rows, Totals: totals}, nil
}

// resolveBreadTypes maps item names to catalog ids, keeping the order and
// repetitions of items.
func (s *breadService) resolveBreadTypes(ctx context.Context, items []string) ([]int64, error) {
	types, err := s.breadRepository.FindBreadTypesByName(ctx, items)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int64, len(types))
	for _, t := range types {
		byName[t.Name] = t.ID
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, ok := byName[item]
		if !ok {
			return nil, newFieldError("items", fmt.Errorf("%w: %q", ErrUnknownItem, item))
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *breadService) editableDatesAfter(ctx context.Context, after models.Date) ([]int64, error) {
	dates, err := s.breadRepository.ListOrderDatesAfter(ctx, after)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	ids := make([]int64, 0, len(dates))
	for _, d := range dates {
		if d.Editable(today) {
			ids = append(ids, d.ID)
		}
	}
	return ids, nil
}
