// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "crypto/subtle"

type adminService struct {
	adminToken string
}

func NewAdminService(adminToken string) AdminService {
	return &adminService{adminToken: adminToken}
}

// CheckAdminToken compares in constant time. Without a configured token
// every check fails.
func (a *adminService) CheckAdminToken(token string) bool {
	if a.adminToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.adminToken), []byte(token)) == 1
}
