// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/migrations"
)

// maxTxAttempts bounds how often a transaction classified as [Retryable]
// is replayed.
const maxTxAttempts = 3

// DB wraps a *sql.DB together with the SQL dialect it speaks.
//
// Repositories build their statements through builder so that placeholders
// match the driver ($1 for PostgreSQL, ? for SQLite).
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		placeholder:        placeholder,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect returns the migrations dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// rebind rewrites the "?" placeholders of a static query for the dialect.
// On failure the query is returned unchanged and the error is logged.
func (db *DB) rebind(query string) string {
	if db.placeholder == nil {
		return query
	}
	q, err := db.placeholder.ReplacePlaceholders(query)
	if err != nil {
		if db.logger != nil {
			db.logger.Err(fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)).
				Str("func", "*DB.rebind").Str("dialect", db.dialect).Str("query", query).
				Msg("rewriting placeholders failed")
		}
		return query
	}
	return q
}

// classify returns the classification of err, or [NonRetryable] when the
// connection has no classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

func (db *DB) isUniqueViolation(err error) bool {
	return err != nil && db.classify(err) == UniqueViolation
}

// withTx runs fn inside a transaction and commits it. Transactions failing
// with a [Retryable] error are replayed up to maxTxAttempts times.
func (db *DB) withTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.classify(err) != Retryable {
			return err
		}
		log.Warn().Err(err).Str("func", funcName).Int("attempt", attempt).Msg("retrying transaction")
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
