// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/models"
)

type kotbarService struct {
	kotbarRepository store.KotbarRepository
	userRepository   store.UserRepository
	notifications    NotificationService
	clock            Clock

	logger *logger.Logger
}

func NewKotbarService(
	kotbarRepository store.KotbarRepository,
	userRepository store.UserRepository,
	notifications NotificationService,
	clock Clock,
	logger *logger.Logger,
) KotbarService {
	return &kotbarService{
		kotbarRepository: kotbarRepository,
		userRepository:   userRepository,
		notifications:    notifications,
		clock:            clock,
		logger:           logger,
	}
}

// Reserve implements KotbarService. The date must lie between today and
// today+KotbarMaxDaysAhead, both included. The booked check gives a
// friendly error; the storage constraint settles concurrent bookings.
func (s *kotbarService) Reserve(ctx context.Context, userID int64, req models.KotbarReserveRequest) (models.KotbarReservation, error) {
	today := s.clock.Today()
	last := today.AddDays(models.KotbarMaxDaysAhead)
	if req.Date.Before(today) || req.Date.After(last) {
		return models.KotbarReservation{}, newFieldError("date",
			fmt.Errorf("%w: should be between (and including) %s and %s", ErrDateOutOfRange, today, last))
	}

	booked, err := s.kotbarRepository.IsBooked(ctx, req.Date)
	if err != nil {
		return models.KotbarReservation{}, err
	}
	if booked {
		return models.KotbarReservation{}, newFieldError("date", store.ErrDateAlreadyBooked)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.KotbarReservation{}, err
	}

	reservation, err := s.kotbarRepository.CreateReservation(ctx, models.KotbarReservation{
		UserID:      userID,
		Date:        req.Date,
		Description: req.Description,
	})
	if errors.Is(err, store.ErrDateAlreadyBooked) {
		return models.KotbarReservation{}, newFieldError("date", err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*kotbarService.Reserve").Str("date", req.Date.String()).Msg("kotbar reservation failed")
		return models.KotbarReservation{}, fmt.Errorf("kotbar reservation failed: %w", err)
	}
	reservation.UserName = user.FullName()
	reservation.UserEmail = user.Email

	s.notifications.SendKotbarReservation(ctx, user, reservation)
	return reservation, nil
}

// List implements KotbarService.
func (s *kotbarService) List(ctx context.Context, userID int64) ([]models.KotbarReservationView, error) {
	reservations, err := s.kotbarRepository.ListReservationsAfter(ctx, s.clock.Today().AddDays(-1))
	if err != nil {
		return nil, err
	}

	views := make([]models.KotbarReservationView, 0, len(reservations))
	for _, r := range reservations {
		views = append(views, models.KotbarReservationView{
			ID:          r.ID,
			UserName:    r.UserName,
			Date:        r.Date,
			Description: r.Description,
			Own:         r.UserID == userID,
		})
	}
	return views, nil
}

func (s *kotbarService) Upcoming(ctx context.Context) (models.Date, []models.KotbarReservation, error) {
	today := s.clock.Today()
	reservations, err := s.kotbarRepository.ListReservationsAfter(ctx, today.AddDays(-1))
	if err != nil {
		return models.Date{}, nil, err
	}
	return today, reservations, nil
}

// Delete implements KotbarService. Only the owner may delete a booking.
func (s *kotbarService) Delete(ctx context.Context, userID, reservationID int64) error {
	reservation, err := s.kotbarRepository.FindReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return ErrForbidden
	}

	return s.kotbarRepository.DeleteReservation(ctx, reservationID)
}
