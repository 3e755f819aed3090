// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

// Package store provides PostgreSQL connection and schema management.
package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
)

// Connect opens a pgx connection pool against the configured database URL
// and verifies it with a ping. The caller owns the pool and must Close it.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, oops.Code("CONFIG_INVALID").Errorf("database URL cannot be empty")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "create pool").Wrap(err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "ping").Wrap(err)
	}

	return pool, nil
}
