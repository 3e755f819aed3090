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

// LoginView is the view rendered for any unauthenticated outcome.
const LoginView = "login"

// Responder is the render/continuation sink: the guard only ever decides
// which of these to invoke and with what payload; producing bytes on the
// wire belongs to the transport.
type Responder interface {
	Render(view string, data any)
	Redirect(path string)
}

// Action is a protected continuation invoked by AuthenticateAndExecute.
type Action func(data any)

// Guard is the authentication gate evaluated per protected request. Both
// entry points share a single predicate and differ only in their
// continuation. Every failure mode - missing cookie fields, undecryptable
// values, unknown account, digest mismatch, store fault - collapses to
// "unauthenticated": render the login prompt, return false. Nothing here
// ever propagates as a fault.
type Guard struct {
	accounts AccountRepository
	codec    Codec
	logger   *slog.Logger
}

// NewGuard creates a new Guard.
func NewGuard(accounts AccountRepository, codec Codec, logger *slog.Logger) (*Guard, error) {
	if accounts == nil {
		return nil, oops.Code("AUTH_INVALID_DEPENDENCY").Errorf("account repository is required")
	}
	if codec == nil {
		return nil, oops.Code("AUTH_INVALID_DEPENDENCY").Errorf("session codec is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{accounts: accounts, codec: codec, logger: logger}, nil
}

// AuthenticateAndRender renders view with data when the token
// authenticates, the login prompt otherwise. Returns whether the caller
// was authenticated.
func (g *Guard) AuthenticateAndRender(ctx context.Context, token Token, r Responder, view string, data any) bool {
	if !g.authenticate(ctx, token) {
		r.Render(LoginView, nil)
		return false
	}
	r.Render(view, data)
	return true
}

// AuthenticateAndExecute invokes action with data when the token
// authenticates, renders the login prompt otherwise. Returns whether the
// caller was authenticated.
func (g *Guard) AuthenticateAndExecute(ctx context.Context, token Token, r Responder, action Action, data any) bool {
	if !g.authenticate(ctx, token) {
		r.Render(LoginView, nil)
		return false
	}
	action(data)
	return true
}

// authenticate is the shared predicate. Per request the state machine is
// Unchecked -> {Authenticated, Unauthenticated}, terminal either way.
func (g *Guard) authenticate(ctx context.Context, token Token) bool {
	if !token.Complete() {
		recordGuardDecision(false, "missing_fields")
		return false
	}

	email, err := g.codec.Decrypt(token.Email)
	if err != nil {
		recordGuardDecision(false, "malformed_token")
		return false
	}
	digest, err := g.codec.Decrypt(token.PasswordDigest)
	if err != nil {
		recordGuardDecision(false, "malformed_token")
		return false
	}

	account, err := g.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			recordGuardDecision(false, "unknown_account")
			return false
		}
		// A store fault is treated as unauthenticated rather than surfaced:
		// safety over informative errors.
		g.logger.Warn("guard store lookup failed", "error", err)
		recordGuardDecision(false, "store_error")
		return false
	}

	if subtle.ConstantTimeCompare([]byte(account.PasswordDigest), []byte(digest)) != 1 {
		recordGuardDecision(false, "digest_mismatch")
		return false
	}

	recordGuardDecision(true, "ok")
	return true
}
