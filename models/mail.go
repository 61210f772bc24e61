// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Attachment is a file attached to an outgoing mail.
type Attachment struct {
	Name    string
	Content []byte
}

// Mail is a fully rendered outgoing message.
type Mail struct {
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}
