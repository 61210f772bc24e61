// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminService_CheckAdminToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		given      string
		want       bool
	}{
		{name: "match", configured: "admin-token", given: "admin-token", want: true},
		{name: "mismatch", configured: "admin-token", given: "admin-tokem"},
		{name: "prefix", configured: "admin-token", given: "admin"},
		{name: "empty given", configured: "admin-token", given: ""},
		{name: "nothing configured", configured: "", given: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAdminService(tt.configured).CheckAdminToken(tt.given))
		})
	}
}
