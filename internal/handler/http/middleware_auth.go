// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/utils"
	"github.com/lerkeveld/underground/models"
)

type tokenCtxKey struct{}

// auth requires a valid access token in the access cookie. The resident's
// id and the token are stored in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.sessionAuth(accessCookieName, models.AccessToken, next)
}

// refreshAuth is auth for the refresh token, which only reaches the
// refresh endpoint.
func (h *Handler) refreshAuth(next http.Handler) http.Handler {
	return h.sessionAuth(refreshCookieName, models.RefreshToken, next)
}

func (h *Handler) sessionAuth(cookieName string, tokenType models.TokenType, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, r, "*Handler.sessionAuth", ErrMissingSessionCookie)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value, tokenType)
		if err != nil {
			writeError(w, r, "*Handler.sessionAuth", err)
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = context.WithValue(ctx, tokenCtxKey{}, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// csrf rejects mutating requests whose X-CSRF-TOKEN header differs from the
// CSRF claim of the session token. It must run after auth or refreshAuth.
func (h *Handler) csrf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		token, ok := r.Context().Value(tokenCtxKey{}).(models.Token)
		header := r.Header.Get(csrfHeader)
		if !ok || header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(token.CSRF)) != 1 {
			logger.FromRequest(r).Debug().Str("func", "*Handler.csrf").Str("uri", r.RequestURI).Msg("csrf check failed")
			writeError(w, r, "*Handler.csrf", ErrCSRFMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// userID returns the id stored by auth.
func userID(r *http.Request) (int64, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserID
	}
	return id, nil
}
