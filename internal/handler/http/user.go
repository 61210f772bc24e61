// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/lerkeveld/underground/internal/utils"
	"github.com/lerkeveld/underground/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.profile", err)
		return
	}

	user, err := h.services.UserService.Profile(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.profile", err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, User: user}, http.StatusOK)
}

func (h *Handler) roster(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.Roster(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.roster", err)
		return
	}

	utils.WriteJSON(w, models.RosterResponse{Success: true, Users: users}, http.StatusOK)
}

// editProfile applies the fields present in the body; absent fields keep
// their value.
func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.editProfile", err)
		return
	}

	var req models.ProfileEditRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.editProfile", err)
		return
	}

	if err = h.services.UserService.UpdateProfile(r.Context(), id, req); err != nil {
		writeError(w, r, "*Handler.editProfile", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) editSecure(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, "*Handler.editSecure", err)
		return
	}

	var req models.SecureEditRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, "*Handler.editSecure", err)
		return
	}

	if err = h.services.UserService.UpdateCredentials(r.Context(), id, req); err != nil {
		writeError(w, r, "*Handler.editSecure", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
