// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/render"
	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/validators"
	"github.com/lerkeveld/underground/models"
	"github.com/stretchr/testify/require"
)

// Fakes implement the service interfaces through overridable fn fields. A
// call to a method whose field is nil panics, which the router's Recoverer
// turns into a 500.

type fakeAuthService struct {
	authenticateFn      func(ctx context.Context, email, password string) (models.User, error)
	issueSessionFn      func(ctx context.Context, user models.User) (models.Session, error)
	refreshFn           func(ctx context.Context, userID int64) (models.Token, error)
	parseTokenFn        func(ctx context.Context, tokenString string, tokenType models.TokenType) (models.Token, error)
	requestActivationFn func(ctx context.Context, req models.ActivateRequest) error
	requestResetFn      func(ctx context.Context, email string) error
	activateFn          func(ctx context.Context, token string) error
	checkResetTokenFn   func(ctx context.Context, token string) (models.User, error)
	resetPasswordFn     func(ctx context.Context, token, password string) error
}

func (f *fakeAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return f.authenticateFn(ctx, email, password)
}

func (f *fakeAuthService) IssueSession(ctx context.Context, user models.User) (models.Session, error) {
	return f.issueSessionFn(ctx, user)
}

func (f *fakeAuthService) Refresh(ctx context.Context, userID int64) (models.Token, error) {
	return f.refreshFn(ctx, userID)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string, tokenType models.TokenType) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString, tokenType)
}

func (f *fakeAuthService) RequestActivation(ctx context.Context, req models.ActivateRequest) error {
	return f.requestActivationFn(ctx, req)
}

func (f *fakeAuthService) RequestReset(ctx context.Context, email string) error {
	return f.requestResetFn(ctx, email)
}

func (f *fakeAuthService) Activate(ctx context.Context, token string) error {
	return f.activateFn(ctx, token)
}

func (f *fakeAuthService) CheckResetToken(ctx context.Context, token string) (models.User, error) {
	return f.checkResetTokenFn(ctx, token)
}

func (f *fakeAuthService) ResetPassword(ctx context.Context, token, password string) error {
	return f.resetPasswordFn(ctx, token, password)
}

type fakeUserService struct {
	service.UserService

	profileFn           func(ctx context.Context, userID int64) (models.User, error)
	rosterFn            func(ctx context.Context) ([]models.RosterEntry, error)
	updateProfileFn     func(ctx context.Context, userID int64, req models.ProfileEditRequest) error
	updateCredentialsFn func(ctx context.Context, userID int64, req models.SecureEditRequest) error
}

func (f *fakeUserService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return f.profileFn(ctx, userID)
}

func (f *fakeUserService) Roster(ctx context.Context) ([]models.RosterEntry, error) {
	return f.rosterFn(ctx)
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileEditRequest) error {
	return f.updateProfileFn(ctx, userID, req)
}

func (f *fakeUserService) UpdateCredentials(ctx context.Context, userID int64, req models.SecureEditRequest) error {
	return f.updateCredentialsFn(ctx, userID, req)
}

// fakeBreadService embeds the interface for the admin-only methods the
// handlers never call.
type fakeBreadService struct {
	service.BreadService

	today models.Date

	listOrderDatesFn    func(ctx context.Context, userID int64) ([]models.OrderDateWithOrders, error)
	addOrdersFn         func(ctx context.Context, userID, dateID int64, items []string) error
	addOrdersAfterFn    func(ctx context.Context, userID int64, after models.Date, items []string) error
	deleteOrdersOnFn    func(ctx context.Context, userID, dateID int64) error
	deleteOrdersAfterFn func(ctx context.Context, userID int64, after models.Date) error
	breadTypesFn        func(ctx context.Context) ([]models.BreadType, error)
	reportForDateFn     func(ctx context.Context, date models.Date) (models.BreadReport, error)
}

func (f *fakeBreadService) ListOrderDates(ctx context.Context, userID int64) ([]models.OrderDateWithOrders, error) {
	return f.listOrderDatesFn(ctx, userID)
}

func (f *fakeBreadService) AddOrders(ctx context.Context, userID, dateID int64, items []string) error {
	return f.addOrdersFn(ctx, userID, dateID, items)
}

func (f *fakeBreadService) AddOrdersAfter(ctx context.Context, userID int64, after models.Date, items []string) error {
	return f.addOrdersAfterFn(ctx, userID, after, items)
}

func (f *fakeBreadService) DeleteOrdersOn(ctx context.Context, userID, dateID int64) error {
	return f.deleteOrdersOnFn(ctx, userID, dateID)
}

func (f *fakeBreadService) DeleteOrdersAfter(ctx context.Context, userID int64, after models.Date) error {
	return f.deleteOrdersAfterFn(ctx, userID, after)
}

func (f *fakeBreadService) BreadTypes(ctx context.Context) ([]models.BreadType, error) {
	return f.breadTypesFn(ctx)
}

func (f *fakeBreadService) ReportForDate(ctx context.Context, date models.Date) (models.BreadReport, error) {
	return f.reportForDateFn(ctx, date)
}

func (f *fakeBreadService) Today() models.Date {
	return f.today
}

type fakeKotbarService struct {
	reserveFn  func(ctx context.Context, userID int64, req models.KotbarReserveRequest) (models.KotbarReservation, error)
	listFn     func(ctx context.Context, userID int64) ([]models.KotbarReservationView, error)
	upcomingFn func(ctx context.Context) (models.Date, []models.KotbarReservation, error)
	deleteFn   func(ctx context.Context, userID, reservationID int64) error
}

func (f *fakeKotbarService) Reserve(ctx context.Context, userID int64, req models.KotbarReserveRequest) (models.KotbarReservation, error) {
	return f.reserveFn(ctx, userID, req)
}

func (f *fakeKotbarService) List(ctx context.Context, userID int64) ([]models.KotbarReservationView, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeKotbarService) Upcoming(ctx context.Context) (models.Date, []models.KotbarReservation, error) {
	return f.upcomingFn(ctx)
}

func (f *fakeKotbarService) Delete(ctx context.Context, userID, reservationID int64) error {
	return f.deleteFn(ctx, userID, reservationID)
}

type fakeMaterialService struct {
	service.MaterialService

	reserveFn       func(ctx context.Context, userID int64, req models.MaterialReserveRequest) (models.MaterialReservation, error)
	listFn          func(ctx context.Context, userID int64) ([]models.MaterialReservationView, error)
	deleteFn        func(ctx context.Context, userID, reservationID int64) error
	materialTypesFn func(ctx context.Context) ([]models.MaterialType, error)
}

func (f *fakeMaterialService) Reserve(ctx context.Context, userID int64, req models.MaterialReserveRequest) (models.MaterialReservation, error) {
	return f.reserveFn(ctx, userID, req)
}

func (f *fakeMaterialService) List(ctx context.Context, userID int64) ([]models.MaterialReservationView, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeMaterialService) Delete(ctx context.Context, userID, reservationID int64) error {
	return f.deleteFn(ctx, userID, reservationID)
}

func (f *fakeMaterialService) MaterialTypes(ctx context.Context) ([]models.MaterialType, error) {
	return f.materialTypesFn(ctx)
}

type fakeAdminService struct {
	token string
}

func (f *fakeAdminService) CheckAdminToken(token string) bool {
	return f.token != "" && token == f.token
}

// Session fixtures: the fake auth service accepts these cookie values.
const (
	testUserID      = int64(7)
	testAccessJWT   = "access.jwt.value"
	testRefreshJWT  = "refresh.jwt.value"
	testAccessCSRF  = "access-csrf"
	testRefreshCSRF = "refresh-csrf"
	testAdminToken  = "admin-token"
)

func testTokens() (access, refresh models.Token) {
	access = models.Token{Type: models.AccessToken, CSRF: testAccessCSRF, SignedString: testAccessJWT, UserID: testUserID}
	refresh = models.Token{Type: models.RefreshToken, CSRF: testRefreshCSRF, SignedString: testRefreshJWT, UserID: testUserID}
	return access, refresh
}

// acceptingParseToken accepts the fixture tokens for their own type only.
func acceptingParseToken(_ context.Context, tokenString string, tokenType models.TokenType) (models.Token, error) {
	access, refresh := testTokens()
	switch {
	case tokenString == testAccessJWT && tokenType == models.AccessToken:
		return access, nil
	case tokenString == testRefreshJWT && tokenType == models.RefreshToken:
		return refresh, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     &fakeAuthService{parseTokenFn: acceptingParseToken},
		UserService:     &fakeUserService{},
		BreadService:    &fakeBreadService{today: models.NewDate(2025, time.October, 15)},
		KotbarService:   &fakeKotbarService{},
		MaterialService: &fakeMaterialService{},
		AdminService:    &fakeAdminService{token: testAdminToken},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	pages, err := render.NewPages()
	require.NoError(t, err)

	cfg := config.StructuredConfig{App: config.App{BaseURL: "https://underground.test/"}}
	return NewHandler(services, validators.NewRequestValidator(), pages, cfg, logger.Nop())
}

// apiRequest builds a request through the full router carrying the access
// cookie and its CSRF header.
func apiRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: accessCookieName, Value: testAccessJWT})
	req.Header.Set(csrfHeader, testAccessCSRF)
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
