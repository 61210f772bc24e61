// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/migrations"
	"github.com/lerkeveld/underground/models"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages returns repositories over a fresh, migrated in-memory
// SQLite database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))

	return NewStoragesFromDB(db, logger.Nop())
}

// newMockDB returns a PostgreSQL-flavoured DB over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func mustCreateUser(t *testing.T, repo UserRepository, email, first, last string) models.User {
	t.Helper()

	user, err := repo.CreateUser(context.Background(), models.User{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: "hash",
		IsActivated:  true,
	})
	require.NoError(t, err)
	return user
}

func ptr[T any](v T) *T {
	return &v
}
