// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a resident account.
//
// Email is unique and always stored lowercase. PasswordHash holds an argon2id
// PHC string and is never serialized. IsMember is tri-state: nil means the
// membership is unknown.
type User struct {
	ID           int64     `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Corridor     string    `json:"corridor"`
	Room         *int      `json:"room"`
	IsAdmin      bool      `json:"-"`
	IsActivated  bool      `json:"-"`
	IsSharing    bool      `json:"is_sharing"`
	IsMember     *bool     `json:"is_member"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`

	Groups []string `json:"groups,omitempty"`
}

// FullName returns "first last", the name shown next to reservations.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Group is a named set of users.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProfileUpdate holds the self-service profile fields a user may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Phone     *string
	Corridor  *string
	Room      *int
	IsSharing *bool
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Phone == nil && p.Corridor == nil && p.Room == nil && p.IsSharing == nil
}

// RosterEntry is one line of the public resident list. Contact details are
// only filled for users who opted into sharing.
type RosterEntry struct {
	FullName string `json:"fullname"`
	Corridor string `json:"corridor"`
	Room     *int   `json:"room"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
