// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/crypto"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/models"
)

type Services struct {
	AuthService         AuthService
	UserService         UserService
	BreadService        BreadService
	KotbarService       KotbarService
	MaterialService     MaterialService
	NotificationService NotificationService
	AdminService        AdminService
}

// Mailing bundles what the notification service needs to produce mails.
type Mailing struct {
	Renderer   MailRenderer
	Queue      MailQueue
	Attachment *models.Attachment
}

// Option customizes NewServices.
type Option func(*options)

type options struct {
	hasher crypto.PasswordHasher
	now    func() time.Time
}

// WithPasswordHasher replaces the default argon2id hasher.
func WithPasswordHasher(h crypto.PasswordHasher) Option {
	return func(o *options) { o.hasher = h }
}

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, mailing Mailing, logger *logger.Logger, opts ...Option) (*Services, error) {
	o := options{hasher: crypto.NewPasswordHasher(crypto.DefaultArgon2idParams), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	loc, err := cfg.App.Location()
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	clock := NewClock(o.now, loc)

	notifications := NewNotificationService(mailing.Renderer, mailing.Queue, mailing.Attachment, cfg, logger)

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, o.hasher, notifications, clock, cfg, logger),
		UserService:         NewUserService(storages.UserRepository, o.hasher, logger),
		BreadService:        NewBreadService(storages.BreadRepository, clock, logger),
		KotbarService:       NewKotbarService(storages.KotbarRepository, storages.UserRepository, notifications, clock, logger),
		MaterialService:     NewMaterialService(storages.MaterialRepository, storages.UserRepository, notifications, clock, logger),
		NotificationService: notifications,
		AdminService:        NewAdminService(cfg.App.AdminToken),
	}, nil
}
