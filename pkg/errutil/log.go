// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

// Package errutil carries shared helpers for logging and asserting on
// structured errors.
package errutil

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
)

// Attrs extracts structured logging attributes from err. Oops errors
// contribute their code and context map; other errors contribute only
// the error string.
func Attrs(err error) []any {
	attrs := []any{"error", err.Error()}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return attrs
	}
	if code := oopsErr.Code(); code != "" {
		attrs = append(attrs, "code", code)
	}
	if errCtx := oopsErr.Context(); len(errCtx) > 0 {
		attrs = append(attrs, "context", errCtx)
	}
	return attrs
}

// LogError logs err at error level with its structured attributes.
func LogError(ctx context.Context, logger *slog.Logger, msg string, err error) {
	logger.ErrorContext(ctx, msg, Attrs(err)...)
}
