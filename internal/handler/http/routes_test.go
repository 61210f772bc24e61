// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestHandler(t, newTestServices()).Init()

	want := []struct{ method, pattern string }{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodPost, "/api/auth/refresh"},
		{http.MethodPost, "/api/auth/activate"},
		{http.MethodPost, "/api/auth/reset"},
		{http.MethodGet, "/api/bread/"},
		{http.MethodGet, "/api/bread/type"},
		{http.MethodPatch, "/api/bread/all"},
		{http.MethodDelete, "/api/bread/all"},
		{http.MethodPatch, "/api/bread/{dateID}"},
		{http.MethodDelete, "/api/bread/{dateID}"},
		{http.MethodGet, "/api/kotbar/"},
		{http.MethodPost, "/api/kotbar/"},
		{http.MethodDelete, "/api/kotbar/{id}"},
		{http.MethodGet, "/api/materiaal/"},
		{http.MethodPost, "/api/materiaal/"},
		{http.MethodGet, "/api/materiaal/type"},
		{http.MethodDelete, "/api/materiaal/{id}"},
		{http.MethodGet, "/api/user/profile"},
		{http.MethodGet, "/api/user/all"},
		{http.MethodPost, "/api/user/edit"},
		{http.MethodPost, "/api/user/edit/secure"},
		{http.MethodGet, "/token/activate/{token}"},
		{http.MethodGet, "/token/reset/{token}"},
		{http.MethodPost, "/token/reset/{token}"},
		{http.MethodGet, "/token/kotbar_reservations/{adminToken}"},
		{http.MethodGet, "/token/bread_reservations/{adminToken}"},
	}

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, w := range want {
		assert.True(t, registered[w.method+" "+w.pattern], "%s %s not registered", w.method, w.pattern)
	}
}

func TestInit_ProtectedRoutesNeedSession(t *testing.T) {
	router := newTestHandler(t, newTestServices()).Init()

	for _, target := range []string{"/api/bread/", "/api/kotbar/", "/api/materiaal/type", "/api/user/profile"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

// Protected sub-routers sit behind auth, so the request carries a session.
func TestInit_WrongMethodIsNotFound(t *testing.T) {
	router := newTestHandler(t, newTestServices()).Init()

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPut, "/api/kotbar/"},
		{http.MethodDelete, "/token/activate/abc"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, apiRequest(tc.method, tc.target, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestHandler(t, newTestServices()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	services := newTestServices()
	h := newTestHandler(t, services)
	h.corsOrigins = []string{"https://underground.test"}
	router := h.Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/kotbar/", nil)
	req.Header.Set("Origin", "https://underground.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", csrfHeader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://underground.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
