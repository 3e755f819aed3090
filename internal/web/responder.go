// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package web

import (
	"log/slog"
	"net/http"

	"github.com/ecommit/ecommit/internal/auth"
	"github.com/ecommit/ecommit/pkg/errutil"
)

// httpResponder adapts one request/response pair onto the guard's
// render/redirect sink.
type httpResponder struct {
	w      http.ResponseWriter
	r      *http.Request
	views  *Views
	logger *slog.Logger
}

var _ auth.Responder = (*httpResponder)(nil)

func (h *httpResponder) Render(view string, data any) {
	if err := h.views.Render(h.w, http.StatusOK, view, data); err != nil {
		errutil.LogError(h.r.Context(), h.logger, "view render failed", err)
	}
}

func (h *httpResponder) Redirect(path string) {
	http.Redirect(h.w, h.r, path, http.StatusFound)
}
