// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/samber/oops"
)

// Service runs the registration and login flows. Each call is a single
// linear continuation (validate, look up, decide, issue); nothing is
// retried internally and no state is shared between requests beyond the
// repository and the codec key.
type Service struct {
	accounts AccountRepository
	hasher   Hasher
	codec    Codec
	logger   *slog.Logger
}

// NewService creates a new Service.
func NewService(accounts AccountRepository, hasher Hasher, codec Codec, logger *slog.Logger) (*Service, error) {
	if accounts == nil {
		return nil, oops.Code("AUTH_INVALID_DEPENDENCY").Errorf("account repository is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_INVALID_DEPENDENCY").Errorf("credential hasher is required")
	}
	if codec == nil {
		return nil, oops.Code("AUTH_INVALID_DEPENDENCY").Errorf("session codec is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		accounts: accounts,
		hasher:   hasher,
		codec:    codec,
		logger:   logger,
	}, nil
}

// RegisterInput is the transient credential set for one registration
// attempt. It is never persisted.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput is the transient credential set for one login attempt.
// RememberMe carries the raw form value; only "on" opts in.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe string
}

// Register validates the input, creates the account, and issues a
// session-only session. The checks run in a fixed order and the first
// failure wins; no partial side effects happen before the insert.
//
// The duplicate check is advisory only: two concurrent registrations can
// both pass it. The insert is the authoritative step - the store's unique
// index turns the loser's insert into ErrDuplicateAccount.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if !ValidName(in.Name) {
		recordRegistration("invalid_name")
		return nil, oops.Code("AUTH_INVALID_NAME").With("name", in.Name).Wrap(ErrInvalidName)
	}
	if in.Password != in.ConfirmPassword {
		recordRegistration("password_mismatch")
		return nil, oops.Code("AUTH_PASSWORD_MISMATCH").Wrap(ErrPasswordMismatch)
	}
	if !ValidEmail(in.Email) {
		recordRegistration("invalid_email")
		return nil, oops.Code("AUTH_INVALID_EMAIL").With("email", in.Email).Wrap(ErrInvalidEmail)
	}

	_, err := s.accounts.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		recordRegistration("duplicate")
		return nil, oops.Code("AUTH_DUPLICATE_ACCOUNT").With("email", in.Email).Wrap(ErrDuplicateAccount)
	case errors.Is(err, ErrNotFound):
		// No account yet, proceed.
	default:
		recordRegistration("store_error")
		return nil, oops.Code("STORE_UNAVAILABLE").With("operation", "get account by email").Wrap(err)
	}

	digest := s.hasher.Hash(in.Password)
	account, err := NewAccount(in.Name, in.Email, digest)
	if err != nil {
		recordRegistration("store_error")
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			// Lost the check-then-act race; same outcome as the pre-check.
			recordRegistration("duplicate")
			return nil, err
		}
		recordRegistration("store_error")
		return nil, oops.Code("STORE_UNAVAILABLE").With("operation", "insert account").Wrap(err)
	}

	session, err := IssueSession(s.codec, account.Email, account.PasswordDigest, false)
	if err != nil {
		recordRegistration("store_error")
		return nil, err
	}

	s.logger.Info("account registered", "email", account.Email, "account_id", account.ID.String())
	recordRegistration("created")
	return session, nil
}

// Login verifies the credentials and issues a session. A remembered login
// gets the fixed 7-day expiry, otherwise the session is session-only.
// Repeated failures are simply re-reported; there is no lockout and no
// attempt counting.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	digest := s.hasher.Hash(in.Password)

	account, err := s.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			recordLogin("unknown_account")
			return nil, oops.Code("AUTH_ACCOUNT_NOT_FOUND").With("email", in.Email).Wrap(ErrAccountNotFound)
		}
		recordLogin("store_error")
		return nil, oops.Code("STORE_UNAVAILABLE").With("operation", "get account by email").Wrap(err)
	}

	if subtle.ConstantTimeCompare([]byte(account.PasswordDigest), []byte(digest)) != 1 {
		s.logger.Info("login failed", "email", in.Email)
		recordLogin("wrong_password")
		return nil, oops.Code("AUTH_LOGIN_FAILED").With("email", in.Email).Wrap(ErrLoginFailed)
	}

	session, err := IssueSession(s.codec, account.Email, account.PasswordDigest, RememberMe(in.RememberMe))
	if err != nil {
		recordLogin("store_error")
		return nil, err
	}

	s.logger.Info("login successful", "email", account.Email, "remembered", session.LongLived())
	recordLogin("success")
	return session, nil
}
