// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/lerkeveld/underground/internal/utils"
	"github.com/lerkeveld/underground/models"
)

func (h *Handler) listOrderDates(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.listOrderDates", err)
		return
	}

	dates, err := h.services.BreadService.ListOrderDates(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.listOrderDates", err)
		return
	}

	utils.WriteJSON(w, models.OrderDatesResponse{Success: true, Dates: dates}, http.StatusOK)
}

func (h *Handler) breadTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.BreadService.BreadTypes(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.breadTypes", err)
		return
	}
	if types == nil {
		types = []models.BreadType{}
	}

	utils.WriteJSON(w, models.BreadTypesResponse{Success: true, Items: types}, http.StatusOK)
}

// addOrders handles PATCH /api/bread/{dateID}.
func (h *Handler) addOrders(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.addOrders", err)
		return
	}
	dateID, err := idParam(r, "dateID")
	if err != nil {
		writeError(w, r, "*Handler.addOrders", err)
		return
	}

	var req models.OrderItemsRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.addOrders", err)
		return
	}

	if err = h.services.BreadService.AddOrders(r.Context(), id, dateID, req.Items); err != nil {
		writeError(w, r, "*Handler.addOrders", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// deleteOrders handles DELETE /api/bread/{dateID}.
func (h *Handler) deleteOrders(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteOrders", err)
		return
	}
	dateID, err := idParam(r, "dateID")
	if err != nil {
		writeError(w, r, "*Handler.deleteOrders", err)
		return
	}

	if err = h.services.BreadService.DeleteOrdersOn(r.Context(), id, dateID); err != nil {
		writeError(w, r, "*Handler.deleteOrders", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// addOrdersAll orders the items on every editable date from today on.
func (h *Handler) addOrdersAll(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.addOrdersAll", err)
		return
	}

	var req models.OrderItemsRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.addOrdersAll", err)
		return
	}

	bread := h.services.BreadService
	if err = bread.AddOrdersAfter(r.Context(), id, bread.Today(), req.Items); err != nil {
		writeError(w, r, "*Handler.addOrdersAll", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteOrdersAll(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteOrdersAll", err)
		return
	}

	bread := h.services.BreadService
	if err = bread.DeleteOrdersAfter(r.Context(), id, bread.Today()); err != nil {
		writeError(w, r, "*Handler.deleteOrdersAll", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
