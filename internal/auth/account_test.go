// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth_test

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecommit/ecommit/internal/auth"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates account with generated ID", func(t *testing.T) {
		account, err := auth.NewAccount("Ada Lovelace", "ada@example.com", "digest123")
		require.NoError(t, err)
		assert.NotEqual(t, ulid.ULID{}, account.ID)
		assert.Equal(t, "Ada Lovelace", account.Name)
		assert.Equal(t, "ada@example.com", account.Email)
		assert.Equal(t, "digest123", account.PasswordDigest)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("rejects empty email", func(t *testing.T) {
		account, err := auth.NewAccount("Ada Lovelace", "", "digest123")
		require.Error(t, err)
		assert.Nil(t, account)
	})

	t.Run("rejects empty digest", func(t *testing.T) {
		account, err := auth.NewAccount("Ada Lovelace", "ada@example.com", "")
		require.Error(t, err)
		assert.Nil(t, account)
	})
}
