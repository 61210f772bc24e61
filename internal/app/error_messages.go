// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the messages shown to residents when the API
// rejects a request. The front-end displays them as is, so they are Dutch.
package app

const (
	// MsgInvalidCredentials is returned by login when the email is unknown
	// or the password does not match.
	MsgInvalidCredentials = "Fout e-mailadres of wachtwoord"

	// MsgNotActivated is returned by login for an account that has not
	// followed its activation link yet.
	MsgNotActivated = "Activeer je account"

	// MsgAlreadyActivated is returned when an activation mail is requested
	// for an account that is already active.
	MsgAlreadyActivated = "Account is reeds geactiveerd"

	// MsgEmailNotLinked is returned when an activation or reset mail is
	// requested for an address without an account.
	MsgEmailNotLinked = "E-mailadres is niet gelinkt aan een account"
)
