// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecommit/ecommit/internal/auth"
)

func testAccount(t *testing.T) *auth.Account {
	t.Helper()
	return &auth.Account{
		ID:             ulid.Make(),
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		PasswordDigest: "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8",
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts account", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		account := testAccount(t)
		mock.ExpectExec(`INSERT INTO accounts`).
			WithArgs(account.ID.String(), account.Name, account.Email, account.PasswordDigest, account.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := NewAccountRepository(mock)
		require.NoError(t, repo.Create(ctx, account))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to duplicate account", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		account := testAccount(t)
		mock.ExpectExec(`INSERT INTO accounts`).
			WithArgs(account.ID.String(), account.Name, account.Email, account.PasswordDigest, account.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		repo := NewAccountRepository(mock)
		err = repo.Create(ctx, account)
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrDuplicateAccount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other database errors are not duplicates", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		account := testAccount(t)
		mock.ExpectExec(`INSERT INTO accounts`).
			WithArgs(account.ID.String(), account.Name, account.Email, account.PasswordDigest, account.CreatedAt).
			WillReturnError(errors.New("connection refused"))

		repo := NewAccountRepository(mock)
		err = repo.Create(ctx, account)
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrDuplicateAccount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored account", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		account := testAccount(t)
		rows := pgxmock.NewRows([]string{"id", "name", "email", "password_digest", "created_at"}).
			AddRow(account.ID.String(), account.Name, account.Email, account.PasswordDigest, account.CreatedAt)
		mock.ExpectQuery(`SELECT id, name, email, password_digest, created_at`).
			WithArgs(account.Email).
			WillReturnRows(rows)

		repo := NewAccountRepository(mock)
		got, err := repo.GetByEmail(ctx, account.Email)
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
		assert.Equal(t, account.Email, got.Email)
		assert.Equal(t, account.PasswordDigest, got.PasswordDigest)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name, email, password_digest, created_at`).
			WithArgs("nobody@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_digest", "created_at"}))

		repo := NewAccountRepository(mock)
		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt id is surfaced", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "name", "email", "password_digest", "created_at"}).
			AddRow("not-a-ulid", "Ada", "ada@example.com", "digest", time.Now())
		mock.ExpectQuery(`SELECT id, name, email, password_digest, created_at`).
			WithArgs("ada@example.com").
			WillReturnRows(rows)

		repo := NewAccountRepository(mock)
		got, err := repo.GetByEmail(ctx, "ada@example.com")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
