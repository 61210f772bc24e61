// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetBody(login).Post("/api/auth/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client that talks JSON to baseURL and keeps the
// session cookies handed out by the server, the way a browser front-end
// does.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}

	return &HTTPClient{Client: client}
}

// CSRF sets the X-CSRF-TOKEN header used on every following request.
func (c *HTTPClient) CSRF(token string) *HTTPClient {
	c.SetHeader("X-CSRF-TOKEN", token)
	return c
}

// Cookie returns the named cookie the client currently holds for path on
// the base URL, or nil.
func (c *HTTPClient) Cookie(path, name string) *http.Cookie {
	jar := c.GetClient().Jar
	if jar == nil {
		return nil
	}
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil
	}
	for _, cookie := range jar.Cookies(req.URL) {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
