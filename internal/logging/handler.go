// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

// Package logging builds the process-wide slog logger. Log records carry
// the service identity and, when the request context holds an active
// span, the OpenTelemetry trace and span IDs.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

// spanContextHandler decorates records with trace context from the
// request context. Service identity attrs are attached once at setup
// via WithAttrs rather than on every record.
type spanContextHandler struct {
	inner slog.Handler
}

func (h *spanContextHandler) Handle(ctx context.Context, r slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		r.AddAttrs(slog.String("trace_id", sc.TraceID().String()))
	}
	if sc.HasSpanID() {
		r.AddAttrs(slog.String("span_id", sc.SpanID().String()))
	}
	//nolint:wrapcheck // Handler interface requires unwrapped error passthrough
	return h.inner.Handle(ctx, r)
}

func (h *spanContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *spanContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &spanContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *spanContextHandler) WithGroup(name string) slog.Handler {
	return &spanContextHandler{inner: h.inner.WithGroup(name)}
}

// Setup builds a logger for the named service. Format is "json" or
// "text"; anything else falls back to JSON. A nil writer means
// os.Stderr.
func Setup(service, version, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	var base slog.Handler
	if format == "text" {
		base = slog.NewTextHandler(w, opts)
	} else {
		base = slog.NewJSONHandler(w, opts)
	}

	handler := (&spanContextHandler{inner: base}).WithAttrs([]slog.Attr{
		slog.String("service", service),
		slog.String("version", version),
	})

	return slog.New(handler)
}

// SetDefault installs a Setup logger as the slog default.
func SetDefault(service, version, format string) {
	slog.SetDefault(Setup(service, version, format, nil))
}
