// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package web

import (
	"net/http"

	"github.com/ecommit/ecommit/internal/auth"
)

// readToken collects the still-encrypted session pair from the request
// cookies. Missing cookies leave the corresponding field empty; the
// guard treats an incomplete token as unauthenticated.
func readToken(r *http.Request) auth.Token {
	var token auth.Token
	if c, err := r.Cookie(auth.CookieEmail); err == nil {
		token.Email = c.Value
	}
	if c, err := r.Cookie(auth.CookieDigest); err == nil {
		token.PasswordDigest = c.Value
	}
	return token
}

// setSessionCookies installs the issued session on the client. A
// long-lived session carries an explicit MaxAge; otherwise the cookies
// die with the browser session.
func setSessionCookies(w http.ResponseWriter, session *auth.Session) {
	maxAge := 0
	if session.LongLived() {
		maxAge = int(session.MaxAge.Seconds())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieEmail,
		Value:    session.EmailCipher,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieDigest,
		Value:    session.DigestCipher,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
}

// clearSessionCookies expires both session cookies on the client. The
// server keeps no session state, so this is the whole of logout.
func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{auth.CookieEmail, auth.CookieDigest} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}
