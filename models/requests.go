// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActivateRequest is the body of POST /api/auth/activate: the resident picks
// a password and a sharing preference, then confirms through the mailed link.
type ActivateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsSharing bool   `json:"isSharing"`
}

// ResetRequest is the body of POST /api/auth/reset.
type ResetRequest struct {
	Email string `json:"email"`
}

// OrderItemsRequest lists bread type names to order.
type OrderItemsRequest struct {
	Items []string `json:"items"`
}

// KotbarReserveRequest is the body of POST /api/kotbar/.
type KotbarReserveRequest struct {
	Date        Date   `json:"date"`
	Description string `json:"description"`
}

// MaterialReserveRequest is the body of POST /api/materiaal/.
type MaterialReserveRequest struct {
	Date  Date     `json:"date"`
	Items []string `json:"items"`
}

// ProfileEditRequest is the body of POST /api/user/edit. Absent fields are
// left unchanged.
type ProfileEditRequest struct {
	Phone     *string `json:"phone"`
	Corridor  *string `json:"corridor"`
	Room      *int    `json:"room"`
	IsSharing *bool   `json:"is_sharing"`
}

// ToUpdate converts the request into a store-level update.
func (r ProfileEditRequest) ToUpdate() ProfileUpdate {
	return ProfileUpdate{
		Phone:     r.Phone,
		Corridor:  r.Corridor,
		Room:      r.Room,
		IsSharing: r.IsSharing,
	}
}

// SecureEditRequest is the body of POST /api/user/edit/secure. Check is the
// current password; Email and Password are the optional new values.
type SecureEditRequest struct {
	Check    string `json:"check"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetForm is the form posted to /token/reset/{token}.
type PasswordResetForm struct {
	Password string `json:"password"`
}
