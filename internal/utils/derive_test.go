// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"testing"
)

func TestDeriveKey_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("token-activate"))
	want := mac.Sum(nil)

	got := DeriveKey("secret", "token-activate")

	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected key\nwant: %x\ngot:  %x", want, got)
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	if !bytes.Equal(DeriveKey("secret", "salt"), DeriveKey("secret", "salt")) {
		t.Fatal("key derivation must be deterministic")
	}
}

func TestDeriveKey_SaltSeparatesKeys(t *testing.T) {
	if bytes.Equal(DeriveKey("secret", "token-activate"), DeriveKey("secret", "token-reset")) {
		t.Fatal("different salts must produce different keys")
	}
}

func TestDeriveKey_SecretSeparatesKeys(t *testing.T) {
	if bytes.Equal(DeriveKey("one", "salt"), DeriveKey("two", "salt")) {
		t.Fatal("different secrets must produce different keys")
	}
}
