// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Flow rejection sentinels. Every failure of the registration, login, or
// guard paths maps onto exactly one of these; the transport layer turns
// them into user-facing messages with errors.Is.
var (
	// ErrInvalidName rejects a registration name that fails the shape contract.
	ErrInvalidName = errors.New("invalid name")

	// ErrPasswordMismatch rejects a registration whose password and
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidEmail rejects an email that fails the shape contract.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrDuplicateAccount rejects a registration for an email that already
	// has an account.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound rejects a login for an unknown email.
	ErrAccountNotFound = errors.New("account does not exist")

	// ErrLoginFailed rejects a login whose password digest does not match.
	ErrLoginFailed = errors.New("login failed")

	// ErrMalformedToken is returned by Codec.Decrypt for any input that was
	// not produced by Encrypt under the same key.
	ErrMalformedToken = errors.New("malformed session token")
)
