// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/lerkeveld/underground/internal/utils"
	"github.com/lerkeveld/underground/models"
)

func (h *Handler) listKotbar(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.listKotbar", err)
		return
	}

	reservations, err := h.services.KotbarService.List(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.listKotbar", err)
		return
	}

	utils.WriteJSON(w, models.KotbarReservationsResponse{Success: true, Reservations: reservations}, http.StatusOK)
}

func (h *Handler) reserveKotbar(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.reserveKotbar", err)
		return
	}

	var req models.KotbarReserveRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.reserveKotbar", err)
		return
	}

	if _, err = h.services.KotbarService.Reserve(r.Context(), id, req); err != nil {
		writeError(w, r, "*Handler.reserveKotbar", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteKotbar(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteKotbar", err)
		return
	}
	reservationID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.deleteKotbar", err)
		return
	}

	if err = h.services.KotbarService.Delete(r.Context(), id, reservationID); err != nil {
		writeError(w, r, "*Handler.deleteKotbar", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) listMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.listMaterial", err)
		return
	}

	reservations, err := h.services.MaterialService.List(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.listMaterial", err)
		return
	}

	utils.WriteJSON(w, models.MaterialReservationsResponse{Success: true, Reservations: reservations}, http.StatusOK)
}

func (h *Handler) reserveMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.reserveMaterial", err)
		return
	}

	var req models.MaterialReserveRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.reserveMaterial", err)
		return
	}

	if _, err = h.services.MaterialService.Reserve(r.Context(), id, req); err != nil {
		writeError(w, r, "*Handler.reserveMaterial", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMaterial", err)
		return
	}
	reservationID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.deleteMaterial", err)
		return
	}

	if err = h.services.MaterialService.Delete(r.Context(), id, reservationID); err != nil {
		writeError(w, r, "*Handler.deleteMaterial", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) materialTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.MaterialService.MaterialTypes(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.materialTypes", err)
		return
	}
	if types == nil {
		types = []models.MaterialType{}
	}

	utils.WriteJSON(w, models.MaterialTypesResponse{Success: true, Items: types}, http.StatusOK)
}
