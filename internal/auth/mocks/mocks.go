// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

// Package mocks provides testify mocks for the auth package interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ecommit/ecommit/internal/auth"
)

// MockAccountRepository is a mock auth.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a MockAccountRepository whose
// expectations are asserted when the test finishes.
func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	t.Helper()
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks account insertion.
func (m *MockAccountRepository) Create(ctx context.Context, account *auth.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// GetByEmail mocks account lookup by email.
func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*auth.Account, error) {
	args := m.Called(ctx, email)
	if acct := args.Get(0); acct != nil {
		return acct.(*auth.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockHasher is a mock auth.Hasher.
type MockHasher struct {
	mock.Mock
}

// NewMockHasher creates a MockHasher whose expectations are asserted when
// the test finishes.
func NewMockHasher(t *testing.T) *MockHasher {
	t.Helper()
	m := &MockHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Hash mocks digest computation.
func (m *MockHasher) Hash(plaintext string) string {
	args := m.Called(plaintext)
	return args.String(0)
}

// MockCodec is a mock auth.Codec.
type MockCodec struct {
	mock.Mock
}

// NewMockCodec creates a MockCodec whose expectations are asserted when
// the test finishes.
func NewMockCodec(t *testing.T) *MockCodec {
	t.Helper()
	m := &MockCodec{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encrypt mocks encryption.
func (m *MockCodec) Encrypt(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

// Decrypt mocks decryption.
func (m *MockCodec) Decrypt(ciphertext string) (string, error) {
	args := m.Called(ciphertext)
	return args.String(0), args.Error(1)
}

// Compile-time interface checks.
var (
	_ auth.AccountRepository = (*MockAccountRepository)(nil)
	_ auth.Hasher            = (*MockHasher)(nil)
	_ auth.Codec             = (*MockCodec)(nil)
)
