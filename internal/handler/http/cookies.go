// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/lerkeveld/underground/models"
)

const (
	accessCookieName  = "access_token_cookie"
	refreshCookieName = "refresh_token_cookie"

	accessCookiePath = "/"
	// refreshCookiePath keeps the refresh token away from every endpoint but
	// the one that needs it.
	refreshCookiePath = "/api/auth/refresh"

	csrfHeader = "X-CSRF-TOKEN"
)

type cookieSettings struct {
	secure bool
}

func (c cookieSettings) session(name, path string, token models.Token) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    token.String(),
		Path:     path,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	return cookie
}

func (c cookieSettings) setAccess(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, c.session(accessCookieName, accessCookiePath, token))
}

func (c cookieSettings) setRefresh(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, c.session(refreshCookieName, refreshCookiePath, token))
}

// clear expires both session cookies.
func (c cookieSettings) clear(w http.ResponseWriter) {
	for _, cookie := range []struct{ name, path string }{
		{accessCookieName, accessCookiePath},
		{refreshCookieName, refreshCookiePath},
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     cookie.name,
			Value:    "",
			Path:     cookie.path,
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   c.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
