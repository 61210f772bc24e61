// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every failed API call. Errors carries
// field-level validation messages when present.
type ErrorResponse struct {
	Msg    string `json:"msg"`
	Errors any    `json:"errors,omitempty"`
}

// SuccessResponse acknowledges a mutation.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// LoginResponse carries the CSRF values bound to the freshly issued cookies.
type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessCSRF  string `json:"a-csrf-token"`
	RefreshCSRF string `json:"r-csrf-token,omitempty"`
}

type OrderDatesResponse struct {
	Success bool                  `json:"success"`
	Dates   []OrderDateWithOrders `json:"dates"`
}

type BreadTypesResponse struct {
	Success bool        `json:"success"`
	Items   []BreadType `json:"items"`
}

type KotbarReservationsResponse struct {
	Success      bool                    `json:"success"`
	Reservations []KotbarReservationView `json:"reservations"`
}

type MaterialReservationsResponse struct {
	Success      bool                      `json:"success"`
	Reservations []MaterialReservationView `json:"reservations"`
}

type MaterialTypesResponse struct {
	Success bool           `json:"success"`
	Items   []MaterialType `json:"items"`
}

type ProfileResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type RosterResponse struct {
	Success bool          `json:"success"`
	Users   []RosterEntry `json:"users"`
}
