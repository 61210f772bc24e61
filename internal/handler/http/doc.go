// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API and the token pages of the
// underground server.
//
// Sessions travel in HttpOnly cookies. Every mutating API call must echo the
// CSRF value bound to its session token in the X-CSRF-TOKEN header. Request
// tracing, access logging, CORS and compression are handled here before
// requests reach the service layer.
package http
