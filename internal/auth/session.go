// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import (
	"time"

	"github.com/samber/oops"
)

// Cookie names carrying the two encrypted session values. Absence of
// either means "no session".
const (
	CookieEmail  = "session_email"
	CookieDigest = "session_passwordHash"
)

// RememberMeDuration is the fixed lifetime of a long-lived session.
const RememberMeDuration = 7 * 24 * time.Hour

// DefaultLandingPath is where successful registration and login redirect.
const DefaultLandingPath = "/myFeed"

// Token is the inbound, still-encrypted session pair as read from the
// client's cookies. Either field may be empty when the cookie is absent.
type Token struct {
	Email          string
	PasswordDigest string
}

// Complete reports whether both required fields are present.
func (t Token) Complete() bool {
	return t.Email != "" && t.PasswordDigest != ""
}

// Session is an issued session: the two ciphertexts to hand to the client
// plus the expiry policy. MaxAge zero means session-only (the cookie dies
// with the browser session); otherwise it is the fixed remember-me window.
type Session struct {
	EmailCipher  string
	DigestCipher string
	MaxAge       time.Duration
}

// LongLived reports whether the session carries an explicit expiry.
func (s *Session) LongLived() bool {
	return s.MaxAge > 0
}

// RememberMe interprets the checkbox convention used by form posts: the
// literal value "on" opts into a long-lived session, anything else
// (including absence) does not.
func RememberMe(value string) bool {
	return value == "on"
}

// IssueSession encrypts the (email, digest) pair into a Session. A
// remembered session gets the fixed 7-day window; otherwise no expiry is
// set and the cookie lives only for the browser session.
func IssueSession(codec Codec, email, passwordDigest string, remember bool) (*Session, error) {
	emailCipher, err := codec.Encrypt(email)
	if err != nil {
		return nil, oops.Code("SESSION_ISSUE_FAILED").With("operation", "encrypt email").Wrap(err)
	}
	digestCipher, err := codec.Encrypt(passwordDigest)
	if err != nil {
		return nil, oops.Code("SESSION_ISSUE_FAILED").With("operation", "encrypt digest").Wrap(err)
	}

	session := &Session{
		EmailCipher:  emailCipher,
		DigestCipher: digestCipher,
	}
	if remember {
		session.MaxAge = RememberMeDuration
	}
	return session, nil
}
