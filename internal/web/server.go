// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/samber/oops"

	"github.com/ecommit/ecommit/internal/auth"
)

// Server is the public HTTP surface.
type Server struct {
	addr       string
	service    *auth.Service
	guard      *auth.Guard
	views      *Views
	logger     *slog.Logger
	listener   net.Listener
	httpServer *http.Server
	running    atomic.Bool
}

// NewServer creates the public server on addr.
func NewServer(addr string, service *auth.Service, guard *auth.Guard, logger *slog.Logger) (*Server, error) {
	if service == nil {
		return nil, oops.Code("WEB_INVALID_DEPENDENCY").Errorf("auth service is required")
	}
	if guard == nil {
		return nil, oops.Code("WEB_INVALID_DEPENDENCY").Errorf("auth guard is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	views, err := NewViews()
	if err != nil {
		return nil, err
	}
	return &Server{
		addr:    addr,
		service: service,
		guard:   guard,
		views:   views,
		logger:  logger,
	}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.HandleFunc("GET /myFeed", s.handleMyFeed)
	mux.HandleFunc("POST /myFeed/refresh", s.handleMyFeedRefresh)
	return mux
}

// Start begins serving. The returned channel receives a serve error if
// the listener fails after startup and is closed on graceful shutdown.
func (s *Server) Start() (<-chan error, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, oops.Errorf("web server already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.running.Store(false)
		return nil, oops.With("addr", s.addr).Wrap(err)
	}
	s.listener = listener

	httpSrv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpServer = httpSrv

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if serveErr := httpSrv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			s.logger.Error("web server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	s.logger.Info("web server started", "addr", listener.Addr().String())
	return errCh, nil
}

// Stop gracefully shuts down the server. Stopping a stopped server is a
// no-op.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.running.Store(true)
			return oops.With("operation", "shutdown_web_server").Wrap(err)
		}
	}

	s.logger.Info("web server stopped")
	return nil
}

// Addr returns the bound listen address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}
