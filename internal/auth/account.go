// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Account is the durable account record. Exactly one account exists per
// email; the repository enforces uniqueness at the store layer. The record
// is never mutated by the flows in this package.
type Account struct {
	ID             ulid.ULID
	Name           string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
}

// NewAccount creates a validated Account. The email and digest must be
// non-empty; shape validation of name and email happens in the flows,
// before hashing, so the constructor only guards structural invariants.
func NewAccount(name, email, passwordDigest string) (*Account, error) {
	if email == "" {
		return nil, oops.Code("ACCOUNT_INVALID_EMAIL").Errorf("email cannot be empty")
	}
	if passwordDigest == "" {
		return nil, oops.Code("ACCOUNT_INVALID_DIGEST").Errorf("password digest cannot be empty")
	}

	return &Account{
		ID:             ulid.Make(),
		Name:           name,
		Email:          email,
		PasswordDigest: passwordDigest,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// AccountRepository manages account persistence. It is the single external
// collaborator of the flows; implementations must key accounts uniquely by
// email and surface a uniqueness conflict from Create as
// ErrDuplicateAccount so concurrent double-registration resolves at the
// store rather than in process.
type AccountRepository interface {
	// Create stores a new account. A uniqueness conflict on email is
	// reported with an error wrapping ErrDuplicateAccount.
	Create(ctx context.Context, account *Account) error

	// GetByEmail retrieves an account by email (case-insensitive).
	// Returns an error wrapping ErrNotFound if no account exists.
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
