// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package web

import (
	"errors"
	"net/http"

	"github.com/ecommit/ecommit/internal/auth"
	"github.com/ecommit/ecommit/pkg/errutil"
)

// maxFormBytes caps POST bodies. Requests over the cap are aborted
// rather than buffered.
const maxFormBytes = 1_000_000

// User-facing lines, verbatim from the original views.
const (
	msgInvalidName      = " Invalid Name! "
	msgPasswordMismatch = "Sorry passwords do not match! "
	msgInvalidEmail     = "Invalid email address! "
	msgDuplicateEmail   = " Sorry email already exists! "
	msgAccountNotFound  = "The account does not exist! "
	msgLoginFailed      = "Sorry login failed!"
	msgLoggedOut        = "You are now logged out! "
	msgStoreUnavailable = "Something went wrong, please try again later."
)

// parseForm enforces the body cap and parses the urlencoded form. It
// writes the response itself on failure and reports whether the handler
// may proceed.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.logger.WarnContext(r.Context(), "request body over cap", "limit", maxErr.Limit)
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := s.views.Render(w, status, "error", ViewData{Message: message}); err != nil {
		errutil.LogError(r.Context(), s.logger, "view render failed", err)
	}
}

// handleIndex serves the combined login/registration page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := s.views.Render(w, http.StatusOK, auth.LoginView, nil); err != nil {
		errutil.LogError(r.Context(), s.logger, "view render failed", err)
	}
}

// handleRegister runs the registration flow. The first failed check
// renders the error view with its message; success sets a session-only
// session and redirects to the feed.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	session, err := s.service.Register(r.Context(), auth.RegisterInput{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidName):
			s.renderError(w, r, http.StatusOK, msgInvalidName)
		case errors.Is(err, auth.ErrPasswordMismatch):
			s.renderError(w, r, http.StatusOK, msgPasswordMismatch)
		case errors.Is(err, auth.ErrInvalidEmail):
			s.renderError(w, r, http.StatusOK, msgInvalidEmail)
		case errors.Is(err, auth.ErrDuplicateAccount):
			s.renderError(w, r, http.StatusOK, msgDuplicateEmail)
		default:
			errutil.LogError(r.Context(), s.logger, "registration failed", err)
			s.renderError(w, r, http.StatusInternalServerError, msgStoreUnavailable)
		}
		return
	}

	setSessionCookies(w, session)
	http.Redirect(w, r, auth.DefaultLandingPath, http.StatusFound)
}

// handleLogin runs the login flow. An unknown account renders the error
// view; a wrong password renders the login view with its message.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}

	session, err := s.service.Login(r.Context(), auth.LoginInput{
		Email:      r.PostFormValue("email"),
		Password:   r.PostFormValue("password"),
		RememberMe: r.PostFormValue("rememberMe"),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountNotFound):
			s.renderError(w, r, http.StatusOK, msgAccountNotFound)
		case errors.Is(err, auth.ErrLoginFailed):
			if renderErr := s.views.Render(w, http.StatusOK, auth.LoginView, ViewData{Message: msgLoginFailed}); renderErr != nil {
				errutil.LogError(r.Context(), s.logger, "view render failed", renderErr)
			}
		default:
			errutil.LogError(r.Context(), s.logger, "login failed", err)
			s.renderError(w, r, http.StatusInternalServerError, msgStoreUnavailable)
		}
		return
	}

	setSessionCookies(w, session)
	http.Redirect(w, r, auth.DefaultLandingPath, http.StatusFound)
}

// handleLogout clears the session cookies and confirms. There is no
// server-side session state to revoke.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookies(w)
	if err := s.views.Render(w, http.StatusOK, "message", ViewData{Message: msgLoggedOut}); err != nil {
		errutil.LogError(r.Context(), s.logger, "view render failed", err)
	}
}

// handleMyFeed is the protected render: an authenticated caller sees the
// feed, anything else sees the login prompt.
func (s *Server) handleMyFeed(w http.ResponseWriter, r *http.Request) {
	responder := &httpResponder{w: w, r: r, views: s.views, logger: s.logger}
	s.guard.AuthenticateAndRender(r.Context(), readToken(r), responder, "myFeed", nil)
}

// handleMyFeedRefresh is the protected action: the continuation runs
// only for an authenticated caller.
func (s *Server) handleMyFeedRefresh(w http.ResponseWriter, r *http.Request) {
	responder := &httpResponder{w: w, r: r, views: s.views, logger: s.logger}
	s.guard.AuthenticateAndExecute(r.Context(), readToken(r), responder, func(any) {
		responder.Redirect(auth.DefaultLandingPath)
	}, nil)
}
