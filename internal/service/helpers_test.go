// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/crypto"
	"github.com/lerkeveld/underground/internal/mock"
	"github.com/lerkeveld/underground/models"
	"go.uber.org/mock/gomock"
)

// cheapHasher keeps argon2 fast in tests.
var cheapHasher = crypto.NewPasswordHasher(crypto.Argon2idParams{Memory: 1024, Iterations: 1, Parallelism: 1})

// testNow is Wednesday 15 October 2025, 10:00 UTC.
var testNow = time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC)

func fixedClock(now time.Time) Clock {
	return NewClock(func() time.Time { return now }, time.UTC)
}

func day(month time.Month, d int) models.Date {
	return models.NewDate(2025, month, d)
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			SecretKey:  "secret-key",
			BaseURL:    "https://underground.test/",
			Timezone:   "UTC",
			AdminToken: "admin-token",
		},
		Auth: config.Auth{
			TokenSignKey:         "sign-key",
			TokenIssuer:          "underground-test",
			AccessTokenDuration:  time.Hour,
			RefreshTokenDuration: 90 * 24 * time.Hour,
			EmailTokenMaxAge:     48 * time.Hour,
		},
		Mail: config.Mail{
			KotbarAdmins:    []string{"kotbar@lerkeveld.test"},
			MateriaalAdmins: []string{"materiaal@lerkeveld.test", "praeses@lerkeveld.test"},
		},
	}
}

type repositories struct {
	users     *mock.MockUserRepository
	bread     *mock.MockBreadRepository
	kotbar    *mock.MockKotbarRepository
	materials *mock.MockMaterialRepository
}

func newRepositories(t *testing.T) repositories {
	ctrl := gomock.NewController(t)
	return repositories{
		users:     mock.NewMockUserRepository(ctrl),
		bread:     mock.NewMockBreadRepository(ctrl),
		kotbar:    mock.NewMockKotbarRepository(ctrl),
		materials: mock.NewMockMaterialRepository(ctrl),
	}
}

// fakeNotifications records what would have been mailed.
type fakeNotifications struct {
	mu          sync.Mutex
	activations []string
	resets      []string
	kotbar      []models.KotbarReservation
	material    []models.MaterialReservation
}

func (f *fakeNotifications) SendActivation(_ context.Context, _ models.User, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activations = append(f.activations, token)
}

func (f *fakeNotifications) SendReset(_ context.Context, _ models.User, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, token)
}

func (f *fakeNotifications) SendKotbarReservation(_ context.Context, _ models.User, r models.KotbarReservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kotbar = append(f.kotbar, r)
}

func (f *fakeNotifications) SendMaterialReservation(_ context.Context, _ models.User, r models.MaterialReservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.material = append(f.material, r)
}

// fakeQueue collects enqueued mails.
type fakeQueue struct {
	mails []models.Mail
}

func (q *fakeQueue) Enqueue(_ context.Context, mail models.Mail) bool {
	q.mails = append(q.mails, mail)
	return true
}

func ptr[T any](v T) *T {
	return &v
}
