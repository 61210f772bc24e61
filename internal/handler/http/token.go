// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/render"
	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/models"
)

// renderPage writes an HTML page. A template failure falls back to a plain
// 500.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, page render.Page, data any) {
	var buf bytes.Buffer
	if err := h.pages.Render(&buf, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.renderPage").Str("page", string(page)).Msg("page rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderTokenFailure shows the timeout page for expired links and the
// failure page for everything else.
func (h *Handler) renderTokenFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTokenExpired):
		h.renderPage(w, r, http.StatusBadRequest, render.PageTimeout, render.LinkData{BaseURL: h.baseURL})
	case errors.Is(err, service.ErrEmailTokenInvalid):
		h.renderPage(w, r, http.StatusBadRequest, render.PageFailure, nil)
	default:
		logger.FromRequest(r).Err(err).Str("func", "*Handler.renderTokenFailure").Msg("token page failed")
		h.renderPage(w, r, http.StatusInternalServerError, render.PageFailure, nil)
	}
}

// activateAccount handles GET /token/activate/{token}.
func (h *Handler) activateAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Activate(r.Context(), chi.URLParam(r, "token")); err != nil {
		h.renderTokenFailure(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageActivation, render.LinkData{BaseURL: h.baseURL})
}

// resetForm handles GET /token/reset/{token}.
func (h *Handler) resetForm(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CheckResetToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.renderTokenFailure(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageReset, render.ResetData{Email: user.Email, Action: r.URL.Path})
}

// resetPassword handles the form posted to /token/reset/{token}. Validation
// problems show the form again.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := chi.URLParam(r, "token")

	user, err := h.services.AuthService.CheckResetToken(ctx, token)
	if err != nil {
		h.renderTokenFailure(w, r, err)
		return
	}

	if err = r.ParseForm(); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, render.PageFailure, nil)
		return
	}
	form := models.PasswordResetForm{Password: r.PostForm.Get("password")}

	if err = h.validator.Validate(ctx, &form); err != nil {
		var validationErrs validation.Errors
		if !errors.As(err, &validationErrs) {
			h.renderTokenFailure(w, r, err)
			return
		}

		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, fieldErr.Error())
		}
		h.renderPage(w, r, http.StatusBadRequest, render.PageReset, render.ResetData{
			Email:  user.Email,
			Action: r.URL.Path,
			Errors: messages,
		})
		return
	}

	if err = h.services.AuthService.ResetPassword(ctx, token, form.Password); err != nil {
		h.renderTokenFailure(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageResetSuccess, render.LinkData{BaseURL: h.baseURL})
}

// kotbarOverview handles GET /token/kotbar_reservations/{adminToken}.
func (h *Handler) kotbarOverview(w http.ResponseWriter, r *http.Request) {
	if !h.services.AdminService.CheckAdminToken(chi.URLParam(r, "adminToken")) {
		h.renderPage(w, r, http.StatusForbidden, render.PageFailure, nil)
		return
	}

	from, reservations, err := h.services.KotbarService.Upcoming(r.Context())
	if err != nil {
		h.renderTokenFailure(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageKotbarOverview, render.KotbarOverviewData{From: from, Reservations: reservations})
}

// breadOverview handles GET /token/bread_reservations/{adminToken}. The
// optional ?date= selects the order date, the next one is shown otherwise.
func (h *Handler) breadOverview(w http.ResponseWriter, r *http.Request) {
	if !h.services.AdminService.CheckAdminToken(chi.URLParam(r, "adminToken")) {
		h.renderPage(w, r, http.StatusForbidden, render.PageFailure, nil)
		return
	}

	var date models.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			h.renderPage(w, r, http.StatusBadRequest, render.PageFailure, nil)
			return
		}
		date = parsed
	}

	report, err := h.services.BreadService.ReportForDate(r.Context(), date)
	if errors.Is(err, store.ErrOrderDateNotFound) {
		h.renderPage(w, r, http.StatusNotFound, render.PageFailure, nil)
		return
	}
	if err != nil {
		h.renderTokenFailure(w, r, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.PageBreadOverview, render.BreadOverviewData{Report: report})
}
