// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

// Package web is the HTTP transport: it collects form bodies, carries
// sessions as cookies, and renders the embedded views. All
// authentication decisions live in internal/auth; this package only
// translates them onto the wire.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/samber/oops"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ViewData is the payload every view receives. Message carries the
// user-facing line for the error, message, and login views.
type ViewData struct {
	Message string
}

// Views holds the parsed template set.
type Views struct {
	templates *template.Template
}

// NewViews parses the embedded templates.
func NewViews() (*Views, error) {
	t, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, oops.Code("WEB_TEMPLATE_PARSE_FAILED").Wrap(err)
	}
	return &Views{templates: t}, nil
}

// Render executes the named view into w with the given status. The view
// is buffered first so a template fault never leaves a half-written
// page behind a 200.
func (v *Views) Render(w http.ResponseWriter, status int, view string, data any) error {
	var buf bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buf, view+".tmpl", data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return oops.Code("WEB_RENDER_FAILED").With("view", view).Wrap(err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck // client may have disconnected mid-write
	w.Write(buf.Bytes())
	return nil
}
