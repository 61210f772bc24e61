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

type materialService struct {
	materialRepository store.MaterialRepository
	userRepository     store.UserRepository
	notifications      NotificationService
	clock              Clock

	logger *logger.Logger
}

func NewMaterialService(
	materialRepository store.MaterialRepository,
	userRepository store.UserRepository,
	notifications NotificationService,
	clock Clock,
	logger *logger.Logger,
) MaterialService {
	return &materialService{
		materialRepository: materialRepository,
		userRepository:     userRepository,
		notifications:      notifications,
		clock:              clock,
		logger:             logger,
	}
}

// Reserve implements MaterialService.
//
// Checks run in order: duplicates in the request, unknown items, items
// already booked on the date. A concurrent booking of the same item that
// slips past the last check is rejected by storage with the same error.
func (s *materialService) Reserve(ctx context.Context, userID int64, req models.MaterialReserveRequest) (models.MaterialReservation, error) {
	seen := make(map[string]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, dup := seen[item]; dup {
			return models.MaterialReservation{}, newFieldError("items", ErrDuplicateItems)
		}
		seen[item] = struct{}{}
	}

	types, err := s.materialRepository.FindMaterialTypesByName(ctx, req.Items)
	if err != nil {
		return models.MaterialReservation{}, err
	}
	byName := make(map[string]models.MaterialType, len(types))
	for _, t := range types {
		byName[t.Name] = t
	}

	items := make([]models.MaterialType, 0, len(req.Items))
	for _, name := range req.Items {
		t, ok := byName[name]
		if !ok {
			return models.MaterialReservation{}, newFieldError("items", fmt.Errorf("%w: %q", ErrUnknownItem, name))
		}
		items = append(items, t)
	}

	booked, err := s.materialRepository.BookedItemsOn(ctx, req.Date)
	if err != nil {
		return models.MaterialReservation{}, err
	}
	for _, b := range booked {
		if _, ok := seen[b.Name]; ok {
			return models.MaterialReservation{}, newFieldError("items", ErrPreviouslyBooked)
		}
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.MaterialReservation{}, err
	}

	reservation, err := s.materialRepository.CreateReservation(ctx, models.MaterialReservation{
		UserID: userID,
		Date:   req.Date,
		Items:  items,
	})
	if errors.Is(err, store.ErrItemAlreadyBooked) {
		return models.MaterialReservation{}, newFieldError("items", ErrPreviouslyBooked)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*materialService.Reserve").Str("date", req.Date.String()).Msg("material reservation failed")
		return models.MaterialReservation{}, fmt.Errorf("material reservation failed: %w", err)
	}
	reservation.UserName = user.FullName()
	reservation.UserEmail = user.Email

	s.notifications.SendMaterialReservation(ctx, user, reservation)
	return reservation, nil
}

// List implements MaterialService. Bookings from today on are listed,
// newest first.
func (s *materialService) List(ctx context.Context, userID int64) ([]models.MaterialReservationView, error) {
	reservations, err := s.materialRepository.ListReservationsAfter(ctx, s.clock.Today().AddDays(-1))
	if err != nil {
		return nil, err
	}

	views := make([]models.MaterialReservationView, 0, len(reservations))
	for _, r := range reservations {
		items := r.Items
		if items == nil {
			items = []models.MaterialType{}
		}
		views = append(views, models.MaterialReservationView{
			ID:       r.ID,
			UserName: r.UserName,
			Date:     r.Date,
			Items:    items,
			Own:      r.UserID == userID,
		})
	}
	return views, nil
}

// Delete implements MaterialService. Only the owner may delete a booking.
func (s *materialService) Delete(ctx context.Context, userID, reservationID int64) error {
	reservation, err := s.materialRepository.FindReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return ErrForbidden
	}

	return s.materialRepository.DeleteReservation(ctx, reservationID)
}

func (s *materialService) MaterialTypes(ctx context.Context) ([]models.MaterialType, error) {
	return s.materialRepository.ListMaterialTypes(ctx)
}

func (s *materialService) CreateMaterialType(ctx context.Context, name string) (models.MaterialType, error) {
	return s.materialRepository.CreateMaterialType(ctx, name)
}
