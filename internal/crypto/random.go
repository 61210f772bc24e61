// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomPasswordLength is the length of passwords generated for accounts
// created without one.
const RandomPasswordLength = 64

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomPassword returns n characters drawn uniformly from [A-Za-z0-9]
// using the OS CSPRNG.
func RandomPassword(n int) (string, error) {
	alphabetLen := big.NewInt(int64(len(passwordAlphabet)))

	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("error generating random password: %w", err)
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}

	return string(out), nil
}
