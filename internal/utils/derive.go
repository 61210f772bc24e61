// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
)

// DeriveKey computes HMAC-SHA256(secret, salt).
//
// It turns one configured secret into independent signing keys, one per
// token purpose, so a token signed for one purpose never verifies for
// another.
//
//	activateKey := utils.DeriveKey(secret, "token-activate")
func DeriveKey(secret, salt string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(salt))
	return mac.Sum(nil)
}
