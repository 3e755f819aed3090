// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ecommit/ecommit/internal/auth"
	"github.com/ecommit/ecommit/internal/auth/mocks"
)

func newTestService(t *testing.T, accounts auth.AccountRepository) *auth.Service {
	t.Helper()
	codec, err := auth.NewAESCodec("test-session-key")
	require.NoError(t, err)
	svc, err := auth.NewService(accounts, auth.NewSHA1Hasher(), codec, nil)
	require.NoError(t, err)
	return svc
}

func TestNewService_NilDependencies(t *testing.T) {
	codec, err := auth.NewAESCodec("test-session-key")
	require.NoError(t, err)

	tests := []struct {
		name        string
		accounts    auth.AccountRepository
		hasher      auth.Hasher
		codec       auth.Codec
		expectError string
	}{
		{
			name:        "nil account repository",
			accounts:    nil,
			hasher:      auth.NewSHA1Hasher(),
			codec:       codec,
			expectError: "account repository is required",
		},
		{
			name:        "nil hasher",
			accounts:    mocks.NewMockAccountRepository(t),
			hasher:      nil,
			codec:       codec,
			expectError: "credential hasher is required",
		},
		{
			name:        "nil codec",
			accounts:    mocks.NewMockAccountRepository(t),
			hasher:      auth.NewSHA1Hasher(),
			codec:       nil,
			expectError: "session codec is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := auth.NewService(tt.accounts, tt.hasher, tt.codec, nil)
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func validRegisterInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "hunter2",
		ConfirmPassword: "hunter2",
	}
}

func TestService_Register_CheckOrder(t *testing.T) {
	ctx := context.Background()

	// None of these reach the repository: the mock has no expectations, so
	// any call would fail the test. That is the "no partial side effects
	// before success" property.
	tests := []struct {
		name    string
		mutate  func(*auth.RegisterInput)
		wantErr error
	}{
		{
			name:    "invalid name rejected first",
			mutate:  func(in *auth.RegisterInput) { in.Name = "R2D2"; in.Email = "not-an-email"; in.ConfirmPassword = "x" },
			wantErr: auth.ErrInvalidName,
		},
		{
			name:    "password mismatch before email shape",
			mutate:  func(in *auth.RegisterInput) { in.Email = "not-an-email"; in.ConfirmPassword = "different" },
			wantErr: auth.ErrPasswordMismatch,
		},
		{
			name:    "invalid email after name and passwords",
			mutate:  func(in *auth.RegisterInput) { in.Email = "not-an-email" },
			wantErr: auth.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository(t)
			svc := newTestService(t, repo)

			in := validRegisterInput()
			tt.mutate(&in)

			session, err := svc.Register(ctx, in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, session)
		})
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores digest and issues session-only session", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "ada@example.com").Return(nil, auth.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(a *auth.Account) bool {
			// hex SHA-1 of "hunter2", never the plaintext
			return a.Email == "ada@example.com" &&
				a.PasswordDigest == auth.NewSHA1Hasher().Hash("hunter2") &&
				a.Name == "Ada Lovelace"
		})).Return(nil)

		session, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		assert.False(t, session.LongLived())
		assert.NotEmpty(t, session.EmailCipher)
		assert.NotEmpty(t, session.DigestCipher)
	})

	t.Run("duplicate email found by pre-check", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		existing, err := auth.NewAccount("Ada Lovelace", "ada@example.com", "somedigest")
		require.NoError(t, err)
		repo.On("GetByEmail", ctx, "ada@example.com").Return(existing, nil)

		session, err := svc.Register(ctx, validRegisterInput())
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrDuplicateAccount)
		assert.Nil(t, session)
	})

	t.Run("duplicate surfaced by racing insert", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "ada@example.com").Return(nil, auth.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*auth.Account")).
			Return(auth.ErrDuplicateAccount)

		session, err := svc.Register(ctx, validRegisterInput())
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrDuplicateAccount)
		assert.Nil(t, session)
	})

	t.Run("store fault is not a duplicate", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "ada@example.com").Return(nil, errors.New("connection refused"))

		session, err := svc.Register(ctx, validRegisterInput())
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrDuplicateAccount)
		assert.Nil(t, session)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewSHA1Hasher()

	account := func(t *testing.T) *auth.Account {
		t.Helper()
		a, err := auth.NewAccount("Ada Lovelace", "ada@example.com", hasher.Hash("hunter2"))
		require.NoError(t, err)
		return a
	}

	t.Run("unknown email", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, auth.ErrNotFound)

		session, err := svc.Login(ctx, auth.LoginInput{Email: "nobody@example.com", Password: "hunter2"})
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrAccountNotFound)
		assert.Nil(t, session)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "ada@example.com").Return(account(t), nil)

		session, err := svc.Login(ctx, auth.LoginInput{Email: "ada@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrLoginFailed)
		assert.Nil(t, session)
	})

	t.Run("success without remember-me is session-only", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "ada@example.com").Return(account(t), nil)

		session, err := svc.Login(ctx, auth.LoginInput{Email: "ada@example.com", Password: "hunter2"})
		require.NoError(t, err)
		assert.False(t, session.LongLived())
	})

	t.Run("remember-me on gives the 7-day window", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "ada@example.com").Return(account(t), nil)

		session, err := svc.Login(ctx, auth.LoginInput{Email: "ada@example.com", Password: "hunter2", RememberMe: "on"})
		require.NoError(t, err)
		assert.True(t, session.LongLived())
		assert.Equal(t, 7*24*time.Hour, session.MaxAge)
	})

	t.Run("any other remember-me value is session-only", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		svc := newTestService(t, repo)

		repo.On("GetByEmail", ctx, "ada@example.com").Return(account(t), nil)

		session, err := svc.Login(ctx, auth.LoginInput{Email: "ada@example.com", Password: "hunter2", RememberMe: "true"})
		require.NoError(t, err)
		assert.False(t, session.LongLived())
	})
}

func TestService_RegisterThenLogin(t *testing.T) {
	// The round-trip property: a successful registration's stored digest
	// lets a subsequent login with the same credentials succeed.
	ctx := context.Background()

	repo := mocks.NewMockAccountRepository(t)
	svc := newTestService(t, repo)

	var stored *auth.Account
	repo.On("GetByEmail", ctx, "ada@example.com").Return(nil, auth.ErrNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*auth.Account")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*auth.Account) }).
		Return(nil)

	_, err := svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, stored)

	repo.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil)

	session, err := svc.Login(ctx, auth.LoginInput{Email: "ada@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotNil(t, session)
}
