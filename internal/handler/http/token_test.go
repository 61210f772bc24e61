// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateAccount(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{name: "activated", wantStatus: http.StatusOK, wantText: "Je account is geactiveerd"},
		{name: "expired link", err: service.ErrEmailTokenExpired, wantStatus: http.StatusBadRequest, wantText: "Deze link is verlopen"},
		{name: "forged link", err: service.ErrEmailTokenInvalid, wantStatus: http.StatusBadRequest, wantText: "Deze link is ongeldig"},
		{name: "storage failure", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantText: "Deze link is ongeldig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AuthService.(*fakeAuthService).activateFn = func(_ context.Context, token string) error {
				assert.Equal(t, "abc.def", token)
				return tt.err
			}

			rec := serve(newTestHandler(t, services), httptest.NewRequest(http.MethodGet, "/token/activate/abc.def", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.wantText)
		})
	}
}

func TestActivateAccount_LinksToBaseURL(t *testing.T) {
	services := newTestServices()
	services.AuthService.(*fakeAuthService).activateFn = func(context.Context, string) error { return nil }

	rec := serve(newTestHandler(t, services), httptest.NewRequest(http.MethodGet, "/token/activate/abc", nil))

	assert.Contains(t, rec.Body.String(), `href="https://underground.test"`)
}

func TestResetForm(t *testing.T) {
	services := newTestServices()
	services.AuthService.(*fakeAuthService).checkResetTokenFn = func(_ context.Context, token string) (models.User, error) {
		if token == "good" {
			return models.User{Email: "jan@example.com"}, nil
		}
		return models.User{}, service.ErrEmailTokenExpired
	}
	h := newTestHandler(t, services)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/token/reset/good", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jan@example.com")
	assert.Contains(t, rec.Body.String(), `action="/token/reset/good"`)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/token/reset/old", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deze link is verlopen")
}

func postResetForm(password string) *http.Request {
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token/reset/good", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		resetErr   error
		wantStatus int
		wantText   string
		wantReset  bool
	}{
		{name: "stores new password", password: "new-password", wantStatus: http.StatusOK, wantText: "Je wachtwoord is gewijzigd", wantReset: true},
		{name: "too short shows form again", password: "short", wantStatus: http.StatusBadRequest, wantText: `class="error"`},
		{name: "empty shows form again", password: "", wantStatus: http.StatusBadRequest, wantText: "Kies een nieuw wachtwoord"},
		{name: "link used meanwhile", password: "new-password", resetErr: service.ErrEmailTokenInvalid, wantStatus: http.StatusBadRequest, wantText: "Deze link is ongeldig", wantReset: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			auth := services.AuthService.(*fakeAuthService)
			auth.checkResetTokenFn = func(context.Context, string) (models.User, error) {
				return models.User{Email: "jan@example.com"}, nil
			}
			reset := false
			auth.resetPasswordFn = func(_ context.Context, token, password string) error {
				reset = true
				assert.Equal(t, "good", token)
				assert.Equal(t, tt.password, password)
				return tt.resetErr
			}

			rec := serve(newTestHandler(t, services), postResetForm(tt.password))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			assert.Equal(t, tt.wantReset, reset)
		})
	}
}

func TestKotbarOverview(t *testing.T) {
	services := newTestServices()
	services.KotbarService.(*fakeKotbarService).upcomingFn = func(context.Context) (models.Date, []models.KotbarReservation, error) {
		return models.NewDate(2025, time.October, 15), []models.KotbarReservation{{
			UserName:    "Jan Peeters",
			UserEmail:   "jan@example.com",
			Date:        models.NewDate(2025, time.October, 20),
			Description: "Verjaardag",
		}}, nil
	}
	h := newTestHandler(t, services)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/token/kotbar_reservations/"+testAdminToken, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jan Peeters")
	assert.Contains(t, rec.Body.String(), "Verjaardag")

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/token/kotbar_reservations/wrong", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Jan Peeters")
}

func TestBreadOverview(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantDate   string
	}{
		{name: "next date", target: "/token/bread_reservations/" + testAdminToken, wantStatus: http.StatusOK, wantDate: ""},
		{name: "chosen date", target: "/token/bread_reservations/" + testAdminToken + "?date=2025-10-21", wantStatus: http.StatusOK, wantDate: "2025-10-21"},
		{name: "bad date", target: "/token/bread_reservations/" + testAdminToken + "?date=tomorrow", wantStatus: http.StatusBadRequest},
		{name: "no order date", target: "/token/bread_reservations/" + testAdminToken + "?date=2025-12-25", wantStatus: http.StatusNotFound, wantDate: "2025-12-25"},
		{name: "wrong token", target: "/token/bread_reservations/nope", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.BreadService.(*fakeBreadService).reportForDateFn = func(_ context.Context, date models.Date) (models.BreadReport, error) {
				assert.Equal(t, tt.wantDate, date.String())
				if date.String() == "2025-12-25" {
					return models.BreadReport{}, store.ErrOrderDateNotFound
				}
				return models.BreadReport{
					OrderDate: models.OrderDate{ID: 1, Date: models.NewDate(2025, time.October, 21), IsActive: true},
					Rows:      []models.BreadReportRow{{FirstName: "Jan", LastName: "Peeters", Corridor: "2B", BreadType: "wit", Amount: 2}},
					Totals:    []models.BreadTotalRow{{TypeID: 1, Name: "wit", Amount: 2}},
				}, nil
			}

			rec := serve(newTestHandler(t, services), httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "Jan Peeters")
			}
		})
	}
}
