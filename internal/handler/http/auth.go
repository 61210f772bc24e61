// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/utils"
	"github.com/lerkeveld/underground/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	session, err := h.services.AuthService.IssueSession(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user logged in")

	h.cookies.setAccess(w, session.Access)
	h.cookies.setRefresh(w, session.Refresh)
	utils.WriteJSON(w, models.LoginResponse{
		Success:     true,
		AccessCSRF:  session.Access.CSRF,
		RefreshCSRF: session.Refresh.CSRF,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w)
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// refresh hands out a new access token. It runs behind refreshAuth.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.refresh", err)
		return
	}

	access, err := h.services.AuthService.Refresh(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.refresh", err)
		return
	}

	h.cookies.setAccess(w, access)
	utils.WriteJSON(w, models.LoginResponse{Success: true, AccessCSRF: access.CSRF}, http.StatusOK)
}

func (h *Handler) requestActivation(w http.ResponseWriter, r *http.Request) {
	var req models.ActivateRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.requestActivation", err)
		return
	}

	if err := h.services.AuthService.RequestActivation(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.requestActivation", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) requestReset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.requestReset", err)
		return
	}

	if err := h.services.AuthService.RequestReset(r.Context(), req.Email); err != nil {
		writeError(w, r, "*Handler.requestReset", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
