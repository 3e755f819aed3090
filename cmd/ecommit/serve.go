// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ecommit/ecommit/internal/auth"
	authpg "github.com/ecommit/ecommit/internal/auth/postgres"
	"github.com/ecommit/ecommit/internal/config"
	"github.com/ecommit/ecommit/internal/logging"
	"github.com/ecommit/ecommit/internal/observability"
	"github.com/ecommit/ecommit/internal/store"
	"github.com/ecommit/ecommit/internal/web"
	"github.com/ecommit/ecommit/pkg/errutil"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the session service",
		Long: `Start the public HTTP server and the observability listener,
backed by the PostgreSQL account store.`,
		RunE: runServe,
	}
	cmd.Flags().AddFlagSet(config.Flags())
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(resolveConfigPath(), cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetDefault("ecommit", version, cfg.Logging.Format)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").Wrap(err)
	}
	defer pool.Close()

	var hasher auth.Hasher
	switch cfg.Hasher.Algorithm {
	case "pbkdf2":
		hasher = auth.NewPBKDF2Hasher(cfg.Hasher.Pepper)
	default:
		hasher = auth.NewSHA1Hasher()
	}

	codec, err := auth.NewAESCodec(cfg.Session.Key)
	if err != nil {
		return err
	}

	accounts := authpg.NewAccountRepository(pool)
	service, err := auth.NewService(accounts, hasher, codec, logger)
	if err != nil {
		return err
	}
	guard, err := auth.NewGuard(accounts, codec, logger)
	if err != nil {
		return err
	}

	obsServer := observability.NewServer(cfg.Observability.Addr, pool.Ping)
	obsErrCh, err := obsServer.Start()
	if err != nil {
		return oops.Code("OBSERVABILITY_START_FAILED").Wrap(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if stopErr := obsServer.Stop(shutdownCtx); stopErr != nil {
			errutil.LogError(shutdownCtx, logger, "observability server shutdown failed", stopErr)
		}
	}()

	webServer, err := web.NewServer(cfg.Server.Addr, service, guard, logger)
	if err != nil {
		return err
	}
	webErrCh, err := webServer.Start()
	if err != nil {
		return oops.Code("WEB_START_FAILED").Wrap(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if stopErr := webServer.Stop(shutdownCtx); stopErr != nil {
			errutil.LogError(shutdownCtx, logger, "web server shutdown failed", stopErr)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return nil
	case err := <-webErrCh:
		if err != nil {
			return oops.Code("WEB_SERVER_FAILED").Wrap(err)
		}
		return nil
	case err := <-obsErrCh:
		if err != nil {
			return oops.Code("OBSERVABILITY_SERVER_FAILED").Wrap(err)
		}
		return nil
	}
}
