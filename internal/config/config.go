// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// underground server. It is populated by merging values from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application secret, public URL, timezone and admin
	// token.
	App App `envPrefix:"APP_"`

	// Auth holds session and email token settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener, timeouts and CORS settings.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds SMTP delivery settings and mailing lists.
	Mail Mail `envPrefix:"MAIL_"`

	// Workers holds the mail worker pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey signs the activation and reset links sent by email.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// BaseURL is the externally reachable root used to build links in
	// emails (e.g. "https://underground.lerkeveld.be").
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timezone is the IANA zone in which "today" is evaluated.
	// Env: APP_TIMEZONE
	Timezone string `env:"TIMEZONE"`

	// AdminToken guards the /token/*_reservations report pages.
	// Env: APP_ADMIN_TOKEN
	AdminToken string `env:"ADMIN_TOKEN"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Location resolves Timezone.
func (a App) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	return loc, nil
}

// Auth holds the session token and email token settings.
type Auth struct {
	// TokenSignKey signs session JWTs.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of session JWTs.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// EmailTokenMaxAge bounds the age of activation and reset links.
	// Env: AUTH_EMAIL_TOKEN_MAX_AGE
	EmailTokenMaxAge time.Duration `env:"EMAIL_TOKEN_MAX_AGE"`

	// InsecureCookies drops the Secure attribute from session cookies.
	// Only meant for local development over plain HTTP.
	// Env: AUTH_INSECURE_COOKIES
	InsecureCookies bool `env:"INSECURE_COOKIES"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL, anything else is taken as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown, including the mail drain.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSOrigins lists the front-end origins allowed to call the API with
	// credentials.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Mail holds outgoing mail settings. An empty Host disables SMTP delivery
// and mails are only logged.
type Mail struct {
	// Env: MAIL_HOST
	Host string `env:"HOST"`
	// Env: MAIL_PORT
	Port int `env:"PORT"`
	// Env: MAIL_USERNAME
	Username string `env:"USERNAME"`
	// Env: MAIL_PASSWORD
	Password string `env:"PASSWORD"`

	// Sender is the From address; SenderName its display name.
	// Env: MAIL_SENDER, MAIL_SENDER_NAME
	Sender     string `env:"SENDER"`
	SenderName string `env:"SENDER_NAME"`

	// KotbarAdmins receives a copy of every kotbar reservation.
	// Env: MAIL_KOTBAR_ADMINS (comma separated)
	KotbarAdmins []string `env:"KOTBAR_ADMINS" envSeparator:","`

	// MateriaalAdmins receives a copy of every materiaal reservation.
	// Env: MAIL_MATERIAAL_ADMINS (comma separated)
	MateriaalAdmins []string `env:"MATERIAAL_ADMINS" envSeparator:","`

	// AttachmentPath points to the house rules document attached to
	// reservation confirmations. Optional.
	// Env: MAIL_ATTACHMENT_PATH
	AttachmentPath string `env:"ATTACHMENT_PATH"`

	// Env: MAIL_ATTACHMENT_NAME
	AttachmentName string `env:"ATTACHMENT_NAME"`
}

// Workers holds configuration for the background mail workers.
type Workers struct {
	// Env: WORKERS_MAIL_WORKERS
	MailWorkers int `env:"MAIL_WORKERS"`

	// MailQueueSize bounds the number of mails waiting for a worker.
	// Env: WORKERS_MAIL_QUEUE_SIZE
	MailQueueSize int `env:"MAIL_QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Zero fields are then filled with defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetStorageConfig loads only what maintenance tooling needs to reach the
// database: environment variables and the optional JSON file.
func GetStorageConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}
