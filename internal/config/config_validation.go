// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultBaseURL              = "http://localhost:8080"
	DefaultTimezone             = "Europe/Brussels"
	DefaultLogLevel             = "info"
	DefaultTokenIssuer          = "lerkeveld-underground"
	DefaultAccessTokenDuration  = time.Hour
	DefaultRefreshTokenDuration = 90 * 24 * time.Hour
	DefaultEmailTokenMaxAge     = 48 * time.Hour
	DefaultDSN                  = "underground.db"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultMailPort             = 587
	DefaultMailSenderName       = "Lerkeveld IT"
	DefaultAttachmentName       = "reglement.pdf"
	DefaultMailWorkers          = 2
	DefaultMailQueueSize        = 100
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.BaseURL, DefaultBaseURL)
	setDefault(&cfg.App.Timezone, DefaultTimezone)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)

	setDefault(&cfg.Auth.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.Auth.AccessTokenDuration, DefaultAccessTokenDuration)
	setDefault(&cfg.Auth.RefreshTokenDuration, DefaultRefreshTokenDuration)
	setDefault(&cfg.Auth.EmailTokenMaxAge, DefaultEmailTokenMaxAge)

	setDefault(&cfg.Storage.DB.DSN, DefaultDSN)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&cfg.Mail.Port, DefaultMailPort)
	setDefault(&cfg.Mail.SenderName, DefaultMailSenderName)
	setDefault(&cfg.Mail.AttachmentName, DefaultAttachmentName)

	setDefault(&cfg.Workers.MailWorkers, DefaultMailWorkers)
	setDefault(&cfg.Workers.MailQueueSize, DefaultMailQueueSize)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return fmt.Errorf("%w: secret key is required", ErrInvalidAppConfigs)
	}
	if _, err := cfg.App.Location(); err != nil {
		return err
	}

	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.AccessTokenDuration <= 0 || cfg.Auth.RefreshTokenDuration <= 0 || cfg.Auth.EmailTokenMaxAge <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Mail.Host != "" && cfg.Mail.Sender == "" {
		return fmt.Errorf("%w: sender is required when a mail host is set", ErrInvalidMailConfigs)
	}

	if cfg.Workers.MailWorkers < 1 || cfg.Workers.MailQueueSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
